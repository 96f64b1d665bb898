package replcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "mira.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write mira.toml: %v", err)
	}
	return path
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[repl]\nprompt = \">> \"\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Repl.Prompt != ">> " {
		t.Errorf("Prompt = %q, want %q", cfg.Repl.Prompt, ">> ")
	}
	if cfg.Repl.HistoryLimit != 1000 {
		t.Errorf("HistoryLimit = %d, want default 1000", cfg.Repl.HistoryLimit)
	}
	if cfg.Repl.Color != "auto" {
		t.Errorf("Color = %q, want default auto", cfg.Repl.Color)
	}
}

func TestLoadFileRejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[repl]\ncolor = \"sometimes\"\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for invalid color mode")
	}
}

func TestLoadFileRejectsNegativeHistoryLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[repl]\nhistory_limit = -5\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for negative history_limit")
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[repl]\nprompt = \"deep> \"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Repl.Prompt != "deep> " {
		t.Errorf("Prompt = %q, want %q", cfg.Repl.Prompt, "deep> ")
	}
}

func TestLoadDefaultWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}
