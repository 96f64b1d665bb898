package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		text string
		kind Kind
		ok   bool
	}{
		{"let", KwLet, true},
		{"fn", KwFn, true},
		{"nothing", KwNothing, true},
		{"Let", 0, false},
		{"letx", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		k, ok := LookupKeyword(tc.text)
		if ok != tc.ok || (ok && k != tc.kind) {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, %v", tc.text, k, ok, tc.kind, tc.ok)
		}
	}
}

func TestIsKeywordCoversAllKeywordKinds(t *testing.T) {
	for text, kind := range keywords {
		tok := Token{Kind: kind, Text: text}
		if !tok.IsKeyword() {
			t.Errorf("token %q (kind %v) not reported as keyword", text, kind)
		}
	}
	if (Token{Kind: Ident, Text: "let_"}).IsKeyword() {
		t.Error("identifier reported as keyword")
	}
}

func TestIsIdent(t *testing.T) {
	if !(Token{Kind: Ident}).IsIdent() {
		t.Error("Ident token not reported as identifier")
	}
	if (Token{Kind: KwLet}).IsIdent() {
		t.Error("keyword token reported as identifier")
	}
}
