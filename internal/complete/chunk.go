// Package complete enumerates completion candidates at a source offset.
// Each candidate is a structured string of typed chunks; consumers decide
// which chunks are literal text to insert and which are placeholder
// decoration to display only.
package complete

import "strings"

// ChunkKind is the closed set of chunk categories a completion string can
// contain.
type ChunkKind uint8

const (
	// ChunkText is plain literal text.
	ChunkText ChunkKind = iota
	// ChunkLeftParen is '('.
	ChunkLeftParen
	// ChunkRightParen is ')'.
	ChunkRightParen
	// ChunkLeftBracket is '['.
	ChunkLeftBracket
	// ChunkRightBracket is ']'.
	ChunkRightBracket
	// ChunkDot is '.'.
	ChunkDot
	// ChunkComma is ', '.
	ChunkComma
	// ChunkCallParameterBegin marks the start of a call-parameter group.
	ChunkCallParameterBegin
	// ChunkCallParameterName is a parameter name placeholder.
	ChunkCallParameterName
	// ChunkCallParameterNameAnnotation is an annotated parameter name.
	ChunkCallParameterNameAnnotation
	// ChunkCallParameterColon separates a parameter name from its type.
	ChunkCallParameterColon
	// ChunkCallParameterColonAnnotation is the annotated form of the colon.
	ChunkCallParameterColonAnnotation
	// ChunkCallParameterType is a parameter type placeholder.
	ChunkCallParameterType
	// ChunkOptionalBegin marks the start of an optional group.
	ChunkOptionalBegin
	// ChunkTypeAnnotation is a result or binding type annotation.
	ChunkTypeAnnotation
)

// IsLiteral reports whether the chunk's text belongs in the inserted text.
// Everything else is placeholder or annotation content shown in the display
// form only.
func (k ChunkKind) IsLiteral() bool {
	switch k {
	case ChunkText, ChunkLeftParen, ChunkRightParen,
		ChunkLeftBracket, ChunkRightBracket, ChunkDot, ChunkComma:
		return true
	default:
		return false
	}
}

// Chunk is one typed fragment of a completion string.
type Chunk struct {
	Kind ChunkKind
	Text string
}

// String is an ordered sequence of chunks describing one completion.
type String struct {
	chunks []Chunk
}

// NewString builds a completion string from chunks.
func NewString(chunks ...Chunk) *String {
	return &String{chunks: chunks}
}

// Chunks returns the chunk sequence. Callers must not modify it.
func (s *String) Chunks() []Chunk {
	return s.chunks
}

// Render produces the full display form: every chunk's text, in order.
func (s *String) Render() string {
	var b strings.Builder
	for _, c := range s.chunks {
		b.WriteString(c.Text)
	}
	return b.String()
}
