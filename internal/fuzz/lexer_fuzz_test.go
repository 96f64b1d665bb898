package fuzztests

import (
	"testing"

	"mira/internal/diag"
	"mira/internal/lexer"
	"mira/internal/source"
	"mira/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.mira", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, diag.BagReporter{Bag: bag})
		prevEnd := uint32(0)
		for {
			tok := lx.Next()
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %v starts before the previous token ends (%d < %d)",
					tok.Kind, tok.Span.Start, prevEnd)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}
