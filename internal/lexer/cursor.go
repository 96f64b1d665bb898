package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"mira/internal/source"
)

// Cursor is a byte position inside a file, bounded by an exclusive limit.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a cursor over the whole file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
	}
}

// EOF reports whether the cursor reached its limit.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and next byte; ok is false when fewer than two
// bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump advances the cursor by one byte.
func (c *Cursor) Bump() {
	if !c.EOF() {
		c.Off++
	}
}

// Mark returns the current offset for later SpanFrom.
func (c *Cursor) Mark() uint32 {
	return c.Off
}

// SpanFrom builds a span from a mark to the current offset.
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{File: c.File.ID, Start: start, End: c.Off}
}

// PeekRune decodes the rune at the cursor; size 0 means EOF or bad encoding.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return 0, 0
	}
	r, sz := utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
	if r == utf8.RuneError && sz <= 1 {
		return utf8.RuneError, 1
	}
	return r, sz
}

// BumpRune advances past one decoded rune.
func (c *Cursor) BumpRune() {
	_, sz := c.PeekRune()
	for i := 0; i < sz; i++ {
		c.Bump()
	}
}
