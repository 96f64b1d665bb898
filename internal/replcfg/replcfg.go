// Package replcfg loads the interactive session configuration from mira.toml.
package replcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the [repl] section of mira.toml with defaults applied.
type Config struct {
	Repl ReplSection `toml:"repl"`
}

// ReplSection controls the line editor behavior.
type ReplSection struct {
	Prompt         string `toml:"prompt"`
	ContinuePrompt string `toml:"continue_prompt"`
	Color          string `toml:"color"`
	HistoryLimit   int    `toml:"history_limit"`
	HistoryFile    string `toml:"history_file"`
}

// Default returns the configuration used when no mira.toml exists.
func Default() Config {
	return Config{
		Repl: ReplSection{
			Prompt:         "mira> ",
			ContinuePrompt: "  ... ",
			Color:          "auto",
			HistoryLimit:   1000,
		},
	}
}

// Find walks up from startDir looking for mira.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "mira.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFile parses the configuration at path. Keys absent from the file keep
// their defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(path, meta, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load searches upward from startDir and parses the first mira.toml found.
// When none exists it returns Default.
func Load(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

func validate(path string, meta toml.MetaData, cfg *Config) error {
	if meta.IsDefined("repl", "color") {
		switch cfg.Repl.Color {
		case "auto", "always", "never":
		default:
			return fmt.Errorf("%s: [repl].color must be auto, always, or never", path)
		}
	}
	if meta.IsDefined("repl", "history_limit") && cfg.Repl.HistoryLimit < 0 {
		return fmt.Errorf("%s: [repl].history_limit must not be negative", path)
	}
	if meta.IsDefined("repl", "prompt") && strings.TrimSpace(cfg.Repl.Prompt) == "" {
		cfg.Repl.Prompt = Default().Repl.Prompt
	}
	return nil
}
