package eval_test

import (
	"bytes"
	"testing"

	"mira/internal/diag"
	"mira/internal/eval"
	"mira/internal/program"
)

func newInterp(t *testing.T) (*eval.Interp, *program.Program, *bytes.Buffer) {
	t.Helper()
	prog := program.NewInteractive(nil)
	out := &bytes.Buffer{}
	return eval.New(prog, out), prog, out
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"10 / 4", "2"},
		{"10 % 4", "2"},
		{"1.5 + 2.5", "4"},
		{"-5", "-5"},
		{`"foo" + "bar"`, `"foobar"`},
		{"1 < 2", "true"},
		{"true && false", "false"},
		{"!false", "true"},
		{"nothing", "nothing"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			in, _, _ := newInterp(t)
			res := in.EvalLine(tc.src)
			if res.HadErrors {
				t.Fatalf("unexpected errors for %q", tc.src)
			}
			if !res.Echo {
				t.Fatalf("expected a value for %q", tc.src)
			}
			if got := res.Value.String(); got != tc.want {
				t.Fatalf("eval(%q) = %s, want %s", tc.src, got, tc.want)
			}
		})
	}
}

func TestEvalBindingsPersistAcrossLines(t *testing.T) {
	in, prog, _ := newInterp(t)
	if res := in.EvalLine("let x = 40"); res.Echo || res.HadErrors {
		t.Fatalf("let result: %+v", res)
	}
	res := in.EvalLine("x + 2")
	if got := res.Value.String(); got != "42" {
		t.Fatalf("x + 2 = %s", got)
	}
	if _, ok := prog.Scope.Lookup("x"); !ok {
		t.Fatal("binding missing from program scope")
	}
}

func TestEvalUserFunction(t *testing.T) {
	in, _, _ := newInterp(t)
	in.EvalLine("fn double(n: int) -> n * 2")
	res := in.EvalLine("double(21)")
	if got := res.Value.String(); got != "42" {
		t.Fatalf("double(21) = %s", got)
	}
}

func TestEvalBuiltins(t *testing.T) {
	in, _, out := newInterp(t)
	if got := in.EvalLine(`len("mira")`).Value.String(); got != "4" {
		t.Fatalf("len = %s", got)
	}
	if got := in.EvalLine(`upper("mira")`).Value.String(); got != `"MIRA"` {
		t.Fatalf("upper = %s", got)
	}
	if got := in.EvalLine(`lower("MIRA")`).Value.String(); got != `"mira"` {
		t.Fatalf("lower = %s", got)
	}
	in.EvalLine(`println("side effect")`)
	if out.String() != "\"side effect\"\n" {
		t.Fatalf("println wrote %q", out.String())
	}
}

func TestEvalDivisionByZeroReportsDiagnostic(t *testing.T) {
	in, prog, _ := newInterp(t)
	var seen []diag.Diagnostic
	prog.Diags.AddConsumer(diag.ConsumerFunc(func(d diag.Diagnostic) { seen = append(seen, d) }))

	res := in.EvalLine("1 / 0")
	if !res.HadErrors {
		t.Fatal("expected HadErrors")
	}
	found := false
	for _, d := range seen {
		if d.Code == diag.SemDivisionByZero {
			found = true
		}
	}
	if !found {
		t.Fatalf("no division-by-zero diagnostic in %v", seen)
	}
}

func TestEvalErrorLineStillResetsFlag(t *testing.T) {
	in, prog, _ := newInterp(t)
	res := in.EvalLine("undefined_name")
	if !res.HadErrors {
		t.Fatal("expected errors for unresolved name")
	}
	if prog.Diags.HadErrors() {
		t.Fatal("error flag not reset after EvalLine")
	}
}
