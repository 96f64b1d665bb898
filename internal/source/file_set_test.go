package source

import (
	"testing"
)

func TestAddVirtualAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("<repl>", []byte("let x = 1"))
	b := fs.AddVirtual("<repl>", []byte("let y = 2"))
	if a == b {
		t.Fatalf("expected distinct IDs, got %d twice", a)
	}
	if got := fs.Get(b).Content; string(got) != "let y = 2" {
		t.Fatalf("unexpected content: %q", got)
	}
	if fs.Get(a).Flags&FileVirtual == 0 {
		t.Fatal("expected FileVirtual flag")
	}
}

func TestGetLatestTracksNewestVersion(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("<repl>", []byte("old"))
	want := fs.AddVirtual("<repl>", []byte("new"))
	got, ok := fs.GetLatest("<repl>")
	if !ok || got != want {
		t.Fatalf("GetLatest = %d, %v; want %d, true", got, ok, want)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test", []byte("let x = 1\nlet y = 2\n"))

	cases := []struct {
		name string
		off  uint32
		line uint32
		col  uint32
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 4, 1, 5},
		{"first newline", 9, 1, 10},
		{"start of second line", 10, 2, 1},
		{"middle of second line", 14, 2, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
			if start.Line != tc.line || start.Col != tc.col {
				t.Fatalf("Resolve(%d) = %d:%d, want %d:%d", tc.off, start.Line, start.Col, tc.line, tc.col)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Fatalf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Fatalf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("GetLine(4) = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Fatalf("GetLine(0) = %q, want empty", got)
	}
}
