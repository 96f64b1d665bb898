// Package driver orchestrates the front-end phases for whole files: the
// batch-mode counterpart of the interactive loop.
package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"mira/internal/diag"
	"mira/internal/lexer"
	"mira/internal/parser"
	"mira/internal/program"
	"mira/internal/sema"
	"mira/internal/source"
	"mira/internal/token"
)

// CheckResult holds the outcome of checking one file.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	FileSet *source.FileSet
	Bag     *diag.Bag
	Items   int
}

// CheckFile tokenizes, parses, and checks one file against a fresh batch
// program.
func CheckFile(path string, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	prog := program.NewBatch(fs)

	p := parser.New(fs.Get(id), reporter)
	items := 0
	for {
		item, done := p.ParseItem()
		if item != nil {
			sema.CheckItem(item, prog.Scope, reporter)
			prog.Append(item)
			items++
		}
		if done {
			break
		}
	}
	bag.Sort()

	return &CheckResult{
		Path:    path,
		FileID:  id,
		FileSet: fs,
		Bag:     bag,
		Items:   items,
	}, nil
}

// CheckFiles checks files concurrently with at most jobs workers. Results
// keep the order of the input paths. I/O failures cancel the group.
func CheckFiles(ctx context.Context, paths []string, maxDiagnostics, jobs int) ([]*CheckResult, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]*CheckResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := CheckFile(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TokenizeResult holds one file's token stream.
type TokenizeResult struct {
	Path    string
	FileID  source.FileID
	FileSet *source.FileSet
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize scans one file without parsing it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Scan(fs.Get(id), diag.BagReporter{Bag: bag})
	return &TokenizeResult{
		Path:    path,
		FileID:  id,
		FileSet: fs,
		Tokens:  toks,
		Bag:     bag,
	}, nil
}
