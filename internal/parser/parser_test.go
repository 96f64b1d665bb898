package parser_test

import (
	"testing"

	"mira/internal/ast"
	"mira/internal/diag"
	"mira/internal/parser"
	"mira/internal/source"
)

func parseAll(t *testing.T, src string) ([]ast.Item, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(src))
	bag := diag.NewBag(16)
	p := parser.New(fs.Get(id), diag.BagReporter{Bag: bag})

	var items []ast.Item
	for {
		item, done := p.ParseItem()
		if item != nil {
			items = append(items, item)
		}
		if done {
			return items, bag
		}
	}
}

func TestParseLet(t *testing.T) {
	items, bag := parseAll(t, `let greeting = "hello"`)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	let, ok := items[0].(*ast.LetItem)
	if !ok || let.Name != "greeting" {
		t.Fatalf("unexpected item %+v", items[0])
	}
	lit, ok := let.Value.(*ast.LitExpr)
	if !ok || lit.Kind != ast.LitString || lit.Value != "hello" {
		t.Fatalf("unexpected value %+v", let.Value)
	}
}

func TestParseFn(t *testing.T) {
	items, bag := parseAll(t, "fn add(a: int, b: int) -> a + b")
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	fn, ok := items[0].(*ast.FnItem)
	if !ok || fn.Name != "add" {
		t.Fatalf("unexpected item %+v", items[0])
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].TypeName != "int" {
		t.Fatalf("unexpected params %+v", fn.Params)
	}
	if _, ok := fn.Body.(*ast.BinaryExpr); !ok {
		t.Fatalf("unexpected body %+v", fn.Body)
	}
}

func TestParseItemsOneAtATime(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte("let a = 1; let b = 2; a + b"))
	p := parser.New(fs.Get(id), nil)

	item, done := p.ParseItem()
	if done || item == nil {
		t.Fatalf("first item: %v done=%v", item, done)
	}
	if let := item.(*ast.LetItem); let.Name != "a" {
		t.Fatalf("first item is %q", let.Name)
	}
	item, done = p.ParseItem()
	if done || item.(*ast.LetItem).Name != "b" {
		t.Fatalf("second item wrong: %+v done=%v", item, done)
	}
	item, done = p.ParseItem()
	if !done {
		t.Fatal("expected done after last item")
	}
	if _, ok := item.(*ast.ExprItem); !ok {
		t.Fatalf("expected expression item, got %+v", item)
	}
}

func TestParsePrecedence(t *testing.T) {
	items, _ := parseAll(t, "1 + 2 * 3")
	e := items[0].(*ast.ExprItem).E.(*ast.BinaryExpr)
	if e.Op != "+" {
		t.Fatalf("top op = %q", e.Op)
	}
	if inner, ok := e.Y.(*ast.BinaryExpr); !ok || inner.Op != "*" {
		t.Fatalf("rhs = %+v", e.Y)
	}
}

func TestParseCall(t *testing.T) {
	items, bag := parseAll(t, `upper("hi")`)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	call, ok := items[0].(*ast.ExprItem).E.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		t.Fatalf("unexpected expr %+v", items[0])
	}
}

func TestParseTruncatedLetRecovers(t *testing.T) {
	// An interactive completion pass parses "let x = " with nothing after
	// the '='. The parser must report and stop cleanly, not loop.
	items, bag := parseAll(t, "let x = ")
	if !bag.HasErrors() {
		t.Fatal("expected expression diagnostic")
	}
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	let := items[0].(*ast.LetItem)
	if _, ok := let.Value.(*ast.BadExpr); !ok {
		t.Fatalf("value = %+v, want BadExpr", let.Value)
	}
}

func TestParseErrorRecovery(t *testing.T) {
	items, bag := parseAll(t, "let = 1; let ok = 2")
	if !bag.HasErrors() {
		t.Fatal("expected diagnostic for missing name")
	}
	if len(items) != 1 {
		t.Fatalf("got %d items after recovery", len(items))
	}
	if let := items[0].(*ast.LetItem); let.Name != "ok" {
		t.Fatalf("recovered item = %+v", items[0])
	}
}
