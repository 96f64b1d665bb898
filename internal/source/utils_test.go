package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no carriage returns", "a\nb", "a\nb", false},
		{"crlf pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"lone cr preserved", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tc.in))
			if !bytes.Equal(got, []byte(tc.want)) || changed != tc.changed {
				t.Fatalf("normalizeCRLF(%q) = %q, %v; want %q, %v", tc.in, got, changed, tc.want, tc.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	in := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(in)
	if !had || string(got) != "hi" {
		t.Fatalf("removeBOM = %q, %v", got, had)
	}
	got, had = removeBOM([]byte("hi"))
	if had || string(got) != "hi" {
		t.Fatalf("removeBOM without BOM = %q, %v", got, had)
	}
}

func TestBuildLineIndex(t *testing.T) {
	idx := buildLineIndex([]byte("a\nbb\n\nc"))
	want := []uint32{1, 4, 5}
	if len(idx) != len(want) {
		t.Fatalf("got %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("got %v, want %v", idx, want)
		}
	}
}
