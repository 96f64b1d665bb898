package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"mira/internal/diag"
	"mira/internal/diagfmt"
	"mira/internal/source"
)

func TestPrettyFormatsLocationAndCode(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.mira", []byte("let x = zq"))
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemUnresolvedName,
		Message:  "unresolved name 'zq'",
		Primary:  source.Span{File: id, Start: 8, End: 10},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowContext: true})
	out := buf.String()

	if !strings.Contains(out, "demo.mira:1:9: ERROR MIR3001: unresolved name 'zq'") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "let x = zq") {
		t.Fatalf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "^~") {
		t.Fatalf("caret underline missing:\n%s", out)
	}
}

func TestPrettyWithoutContext(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.mira", []byte("x"))
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.UnknownCode,
		Message:  "odd",
		Primary:  source.Span{File: id, Start: 0, End: 1},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("expected a single line, got:\n%q", buf.String())
	}
}
