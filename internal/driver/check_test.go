package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mira/internal/driver"
	"mira/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCheckFileClean(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ok.mira", "let x = 1;\nlet y = x + 2;\nprintln(y);\n")

	res, err := driver.CheckFile(path, 0)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if res.Items != 3 {
		t.Fatalf("items = %d, want 3", res.Items)
	}
}

func TestCheckFileReportsErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.mira", "let x = missing;\n")

	res, err := driver.CheckFile(path, 0)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected errors for unresolved name")
	}
}

func TestCheckFileMissingFile(t *testing.T) {
	if _, err := driver.CheckFile(filepath.Join(t.TempDir(), "nope.mira"), 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCheckFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.mira", "let a = 1;\n"),
		writeFile(t, dir, "b.mira", "let b = unknown;\n"),
		writeFile(t, dir, "c.mira", "let c = 3;\n"),
	}

	results, err := driver.CheckFiles(context.Background(), paths, 0, 2)
	if err != nil {
		t.Fatalf("CheckFiles: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("results[%d].Path = %q, want %q", i, res.Path, paths[i])
		}
	}
	if results[0].Bag.HasErrors() || results[2].Bag.HasErrors() {
		t.Error("clean files reported errors")
	}
	if !results[1].Bag.HasErrors() {
		t.Error("b.mira should report an unresolved name")
	}
}

func TestCheckFilesPropagatesIOError(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.mira", "let a = 1;\n"),
		filepath.Join(dir, "missing.mira"),
	}
	if _, err := driver.CheckFiles(context.Background(), paths, 0, 4); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tok.mira", "let x = 1;")

	res, err := driver.Tokenize(path, 0)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []token.Kind{token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF}
	if len(res.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(res.Tokens), len(want), res.Tokens)
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Errorf("token[%d].Kind = %v, want %v", i, res.Tokens[i].Kind, k)
		}
	}
}
