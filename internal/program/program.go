// Package program holds the persistent state of a mira program: the
// committed item log, the top-level scope, the file set, and the diagnostic
// engine. Interactive mode appends to this state line by line; speculative
// completion passes extend it temporarily and roll back before returning.
package program

import (
	"mira/internal/ast"
	"mira/internal/diag"
	"mira/internal/sema"
	"mira/internal/source"
)

// Kind distinguishes how a program is being built.
type Kind uint8

const (
	// KindBatch is a whole-file compile.
	KindBatch Kind = iota
	// KindInteractive is a REPL session that grows one line at a time.
	KindInteractive
)

// Program is the persistent program state.
type Program struct {
	Kind  Kind
	Files *source.FileSet
	Diags *diag.Engine
	Scope *sema.Scope

	items []ast.Item
}

// Mark captures the program state a Rollback can return to.
type Mark struct {
	items int
	scope sema.Mark
}

// NewInteractive creates an empty interactive program with the builtin
// prelude in scope.
func NewInteractive(files *source.FileSet) *Program {
	if files == nil {
		files = source.NewFileSet()
	}
	return &Program{
		Kind:  KindInteractive,
		Files: files,
		Diags: diag.NewEngine(),
		Scope: sema.NewScope(sema.Prelude()),
	}
}

// NewBatch creates an empty batch program with the builtin prelude in scope.
func NewBatch(files *source.FileSet) *Program {
	p := NewInteractive(files)
	p.Kind = KindBatch
	return p
}

// Append commits an item to the program log.
func (p *Program) Append(item ast.Item) {
	p.items = append(p.items, item)
}

// Items returns the committed item log. Callers must not modify it.
func (p *Program) Items() []ast.Item {
	return p.items
}

// Len returns the number of committed items.
func (p *Program) Len() int {
	return len(p.items)
}

// Mark captures the current item count and scope position.
func (p *Program) Mark() Mark {
	return Mark{items: len(p.items), scope: p.Scope.Mark()}
}

// Rollback truncates the item log and scope back to a previously taken
// mark. Speculative passes must call this before returning so the shared
// program state is unchanged for the next real evaluation.
func (p *Program) Rollback(m Mark) {
	p.items = p.items[:m.items]
	p.Scope.Rollback(m.scope)
}
