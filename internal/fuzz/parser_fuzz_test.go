package fuzztests

import (
	"testing"
	"time"

	"mira/internal/diag"
	"mira/internal/parser"
	"mira/internal/source"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsItems(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}
		parseAll(input)
	})
}

// FuzzParserNoHang guards the error-recovery paths: malformed input must
// still reach EOF.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("let x = 1\nlet y = 2;"))      // missing semicolon
	f.Add([]byte("fn f( { }"))                  // unclosed parameter list
	f.Add([]byte("((((((((((1"))                // unbalanced parens
	f.Add([]byte("let = = = ;"))                // garbage between recoveries
	f.Add([]byte("fn f(a: , b: int) -> { a }")) // holes in the signature

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			parseAll(input)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func parseAll(input []byte) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fuzz.mira", input)

	bag := diag.NewBag(128)
	p := parser.New(fs.Get(fileID), diag.BagReporter{Bag: bag})
	for {
		_, done := p.ParseItem()
		if done {
			return
		}
	}
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
