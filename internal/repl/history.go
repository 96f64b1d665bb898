package repl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when historyPayload format changes
const historySchemaVersion uint16 = 1

// History keeps the lines entered in previous sessions and the one running
// now. Navigation is oldest-to-newest; Add deduplicates consecutive repeats.
type History struct {
	path  string
	limit int
	lines []string
	pos   int // navigation cursor, len(lines) when not browsing
}

type historyPayload struct {
	Schema uint16
	Lines  []string
}

// DefaultHistoryPath returns the standard location under XDG_CACHE_HOME.
func DefaultHistoryPath(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app, "history.mp"), nil
}

// OpenHistory loads the history file at path, creating parent directories.
// A missing file yields an empty history; a file with an unknown schema is
// discarded rather than failing the session.
func OpenHistory(path string, limit int) (*History, error) {
	h := &History{path: path, limit: limit}
	if path == "" {
		return h, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return h, nil
		}
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var payload historyPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return h, nil
	}
	if payload.Schema != historySchemaVersion {
		return h, nil
	}
	h.lines = payload.Lines
	h.trim()
	h.pos = len(h.lines)
	return h, nil
}

// Add appends a line and resets navigation. Blank lines and immediate
// duplicates are skipped.
func (h *History) Add(line string) {
	defer func() { h.pos = len(h.lines) }()
	if line == "" {
		return
	}
	if n := len(h.lines); n > 0 && h.lines[n-1] == line {
		return
	}
	h.lines = append(h.lines, line)
	h.trim()
}

// Len returns the number of stored lines.
func (h *History) Len() int {
	return len(h.lines)
}

// Prev moves one line back and returns it; ok is false at the oldest line.
func (h *History) Prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// Next moves one line forward. Past the newest line it reports false and the
// editor shows the in-progress input again.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.lines) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.lines) {
		return "", false
	}
	return h.lines[h.pos], true
}

// ResetCursor abandons navigation without adding a line.
func (h *History) ResetCursor() {
	h.pos = len(h.lines)
}

// Save writes the history atomically. A History opened without a path is
// in-memory only and Save is a no-op.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(h.path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", rmErr)
		}
	}()

	payload := historyPayload{Schema: historySchemaVersion, Lines: h.lines}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), h.path)
}

func (h *History) trim() {
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = h.lines[len(h.lines)-h.limit:]
	}
}
