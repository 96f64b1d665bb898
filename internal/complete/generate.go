package complete

import (
	"mira/internal/parser"
	"mira/internal/program"
	"mira/internal/sema"
	"mira/internal/source"
)

// RunCompletionPass parses the registered buffer into the program one item
// at a time, checking each item against the scope built so far, then
// enumerates the symbols visible at offset and streams them to consumer as
// one batch.
//
// The pass extends the program state: callers that must not keep the
// speculative items take a program.Mark first and roll back after. Callers
// that must not surface the fragment's parse noise suppress the program's
// diagnostic engine around the call.
func RunCompletionPass(prog *program.Program, fileID source.FileID, offset uint32, consumer Consumer) {
	file := prog.Files.Get(fileID)

	p := parser.New(file, prog.Diags)
	for {
		item, done := p.ParseItem()
		if item != nil {
			sema.CheckItem(item, prog.Scope, prog.Diags)
			prog.Append(item)
		}
		if done {
			break
		}
	}

	_ = offset // scope-wide completion; offset reserved for member access

	symbols := prog.Scope.Visible()
	results := make([]*Result, 0, len(symbols))
	for _, sym := range symbols {
		results = append(results, &Result{Str: renderSymbol(sym)})
	}
	if len(results) > 0 {
		consumer.HandleResults(results)
	}
}

// renderSymbol builds the chunked completion string for one symbol.
func renderSymbol(sym sema.Symbol) *String {
	switch sym.Kind {
	case sema.SymFn:
		chunks := []Chunk{
			{Kind: ChunkText, Text: sym.Name},
			{Kind: ChunkLeftParen, Text: "("},
		}
		for i, p := range sym.Params {
			if i > 0 {
				chunks = append(chunks, Chunk{Kind: ChunkComma, Text: ", "})
			}
			chunks = append(chunks,
				Chunk{Kind: ChunkCallParameterBegin},
				Chunk{Kind: ChunkCallParameterName, Text: p.Name},
				Chunk{Kind: ChunkCallParameterColon, Text: ": "},
				Chunk{Kind: ChunkCallParameterType, Text: p.Type.String()},
			)
		}
		chunks = append(chunks, Chunk{Kind: ChunkRightParen, Text: ")"})
		if sym.Result != sema.TypeUnknown {
			chunks = append(chunks, Chunk{Kind: ChunkTypeAnnotation, Text: " -> " + sym.Result.String()})
		}
		return NewString(chunks...)

	case sema.SymType:
		return NewString(Chunk{Kind: ChunkText, Text: sym.Name})

	default:
		return NewString(
			Chunk{Kind: ChunkText, Text: sym.Name},
			Chunk{Kind: ChunkTypeAnnotation, Text: ": " + sym.Type.String()},
		)
	}
}
