package sema

import (
	"testing"
)

func TestScopeBindAndLookup(t *testing.T) {
	s := NewScope(nil)
	s.Bind(Symbol{Name: "x", Kind: SymLet, Type: TypeInt})

	sym, ok := s.Lookup("x")
	if !ok || sym.Type != TypeInt {
		t.Fatalf("Lookup(x) = %+v, %v", sym, ok)
	}
	if _, ok := s.Lookup("y"); ok {
		t.Fatal("unexpected binding for y")
	}
}

func TestScopeLookupWalksParents(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind(Symbol{Name: "x", Kind: SymLet, Type: TypeInt})
	inner := NewScope(outer)
	inner.Bind(Symbol{Name: "y", Kind: SymLet, Type: TypeString})

	if sym, ok := inner.Lookup("x"); !ok || sym.Type != TypeInt {
		t.Fatalf("inner Lookup(x) = %+v, %v", sym, ok)
	}
	if _, ok := outer.Lookup("y"); ok {
		t.Fatal("outer scope sees inner binding")
	}
}

func TestScopeRollbackRestoresShadowed(t *testing.T) {
	s := NewScope(nil)
	s.Bind(Symbol{Name: "x", Kind: SymLet, Type: TypeInt})
	mark := s.Mark()

	s.Bind(Symbol{Name: "x", Kind: SymLet, Type: TypeString}) // shadow
	s.Bind(Symbol{Name: "probe", Kind: SymLet, Type: TypeBool})
	if sym, _ := s.Lookup("x"); sym.Type != TypeString {
		t.Fatalf("shadowed Lookup(x) = %+v", sym)
	}

	s.Rollback(mark)
	if sym, ok := s.Lookup("x"); !ok || sym.Type != TypeInt {
		t.Fatalf("after rollback Lookup(x) = %+v, %v", sym, ok)
	}
	if _, ok := s.Lookup("probe"); ok {
		t.Fatal("speculative binding survived rollback")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d after rollback", s.Len())
	}
}

func TestScopeRollbackIsStable(t *testing.T) {
	s := NewScope(nil)
	mark := s.Mark()
	for i := 0; i < 3; i++ {
		s.Bind(Symbol{Name: "tmp", Kind: SymLet, Type: TypeInt})
		s.Rollback(mark)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d", s.Len())
	}
	if _, ok := s.Lookup("tmp"); ok {
		t.Fatal("tmp survived rollback")
	}
}

func TestVisibleOrderAndShadowing(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind(Symbol{Name: "a", Kind: SymLet, Type: TypeInt})
	outer.Bind(Symbol{Name: "b", Kind: SymLet, Type: TypeInt})
	inner := NewScope(outer)
	inner.Bind(Symbol{Name: "b", Kind: SymLet, Type: TypeString}) // shadows outer b
	inner.Bind(Symbol{Name: "c", Kind: SymLet, Type: TypeBool})

	got := inner.Visible()
	names := make([]string, 0, len(got))
	for _, sym := range got {
		names = append(names, sym.Name)
	}
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("Visible = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Visible = %v, want %v", names, want)
		}
	}
	// The shadowing binding wins.
	if got[1].Type != TypeString {
		t.Fatalf("b resolved to %+v", got[1])
	}
}

func TestVisibleRebindingInSameScope(t *testing.T) {
	s := NewScope(nil)
	s.Bind(Symbol{Name: "x", Kind: SymLet, Type: TypeInt})
	s.Bind(Symbol{Name: "x", Kind: SymLet, Type: TypeString})

	got := s.Visible()
	if len(got) != 1 || got[0].Type != TypeString {
		t.Fatalf("Visible = %+v", got)
	}
}
