package sema

// SymbolKind classifies a scope binding.
type SymbolKind uint8

const (
	// SymLet is a value binding.
	SymLet SymbolKind = iota
	// SymFn is a function.
	SymFn
	// SymType is a type name.
	SymType
	// SymParam is a function parameter.
	SymParam
)

// ParamSig describes one parameter of a function symbol.
type ParamSig struct {
	Name string
	Type TypeKind
}

// Symbol is a single named binding.
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Type   TypeKind   // value type; TypeFn for functions
	Params []ParamSig // function parameters, nil otherwise
	Result TypeKind   // function result, TypeUnknown otherwise
}

// Mark is a point in a scope's binding log that Rollback can return to.
type Mark int

type logEntry struct {
	name    string
	prev    int
	hadPrev bool
}

// Scope is an ordered symbol table. Bindings append to a log; speculative
// analysis takes a Mark before a pass and truncates back to it after, which
// keeps rollback O(1) per binding and allocation-free.
type Scope struct {
	parent  *Scope
	symbols []Symbol
	log     []logEntry
	index   map[string]int
}

// NewScope creates a scope with an optional parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		index:  make(map[string]int),
	}
}

// Parent returns the enclosing scope, if any.
func (s *Scope) Parent() *Scope { return s.parent }

// Bind appends a binding. Rebinding a name shadows the previous entry;
// Rollback restores it.
func (s *Scope) Bind(sym Symbol) {
	prev, hadPrev := s.index[sym.Name]
	s.log = append(s.log, logEntry{name: sym.Name, prev: prev, hadPrev: hadPrev})
	s.index[sym.Name] = len(s.symbols)
	s.symbols = append(s.symbols, sym)
}

// Mark returns the current log position.
func (s *Scope) Mark() Mark {
	return Mark(len(s.symbols))
}

// Rollback truncates the binding log back to a previously taken mark,
// restoring any shadowed entries.
func (s *Scope) Rollback(m Mark) {
	for len(s.symbols) > int(m) {
		entry := s.log[len(s.log)-1]
		if entry.hadPrev {
			s.index[entry.name] = entry.prev
		} else {
			delete(s.index, entry.name)
		}
		s.log = s.log[:len(s.log)-1]
		s.symbols = s.symbols[:len(s.symbols)-1]
	}
}

// Len returns the number of bindings in this scope (shadowed included).
func (s *Scope) Len() int {
	return len(s.symbols)
}

// Lookup resolves a name in this scope or any enclosing scope.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if i, ok := sc.index[name]; ok {
			return sc.symbols[i], true
		}
	}
	return Symbol{}, false
}

// Visible returns every symbol reachable from this scope in deterministic
// order: outermost scope first, each scope in binding order, shadowed
// entries replaced by their innermost binding.
func (s *Scope) Visible() []Symbol {
	var chain []*Scope
	for sc := s; sc != nil; sc = sc.parent {
		chain = append(chain, sc)
	}

	var out []Symbol
	for i := len(chain) - 1; i >= 0; i-- {
		sc := chain[i]
		for j, sym := range sc.symbols {
			if sc.index[sym.Name] != j {
				continue // shadowed within this scope
			}
			if s.resolveScope(sym.Name) != sc {
				continue // shadowed by an inner scope
			}
			out = append(out, sym)
		}
	}
	return out
}

// resolveScope returns the scope whose binding a lookup of name would hit.
func (s *Scope) resolveScope(name string) *Scope {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.index[name]; ok {
			return sc
		}
	}
	return nil
}
