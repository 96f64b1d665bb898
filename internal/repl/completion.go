package repl

import (
	"strings"

	"mira/internal/complete"
	"mira/internal/diag"
	"mira/internal/lexer"
	"mira/internal/program"
	"mira/internal/source"
)

const replBufferName = "<repl input>"

// CompletionState describes what a Populate call found.
type CompletionState uint8

const (
	// StateInvalid is the initial state and the state after Reset. Candidate
	// data must not be read as meaningful.
	StateInvalid CompletionState = iota
	// StateEmpty means no candidate matched the prefix.
	StateEmpty
	// StateUnique means exactly one candidate matched.
	StateUnique
	// StateCompletedRoot means several candidates matched; Root holds their
	// shared prefix.
	StateCompletedRoot
)

// Completions is the interactive-mode completion session. One Populate call
// runs the speculative analysis passes for the partially typed line; the
// navigation methods then cycle over the stored candidates.
//
// Not safe for concurrent use; one session serves one interactive line at a
// time.
type Completions struct {
	prefix      string
	displays    []string
	insertables []string // prefix-stripped suffixes, emission order
	root        string
	rootValid   bool
	cursor      int // index into insertables; -1 when unset
	state       CompletionState
}

// NewCompletions creates a session in StateInvalid.
func NewCompletions() *Completions {
	return &Completions{cursor: -1, state: StateInvalid}
}

// State returns the session state set by the last Populate or Reset.
func (c *Completions) State() CompletionState { return c.state }

// Prefix returns the exact-match filter discovered by the last Populate.
func (c *Completions) Prefix() string { return c.prefix }

// Displays returns the full rendered form of every stored candidate, in
// emission order. Meaningful only outside StateInvalid.
func (c *Completions) Displays() []string { return c.displays }

// Populate runs the completion protocol for the partially typed enteredCode
// against prog and classifies the result.
//
// The first pass appends a NUL sentinel to the line, registers it as a new
// buffer, and runs the incremental parse/check/complete service at the
// sentinel offset. The augmented buffer is then re-tokenized: when the final
// token is an identifier or keyword the user is mid-word, so that token's
// text becomes the filter prefix and the whole pass is re-run against the
// line truncated at the token's start — only the second pass's candidates
// are kept. Diagnostics are suppressed and the program state rolled back
// around every pass, so prog is unchanged when Populate returns.
func (c *Completions) Populate(prog *program.Program, enteredCode string) {
	if prog.Kind != program.KindInteractive {
		panic("repl: Populate requires an interactive program")
	}

	c.prefix = ""
	c.root = ""
	c.rootValid = false
	c.cursor = -1
	c.displays = c.displays[:0]
	c.insertables = c.insertables[:0]

	bufID := c.runPass(prog, enteredCode)

	tokens := lexer.Scan(prog.Files.Get(bufID), diag.NopReporter{})
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if last.IsIdent() || last.IsKeyword() {
			// Mid-word: the raw offset sits inside an identifier, so the
			// first pass's candidates are not bounded by what was typed.
			// Re-run with the real prefix and the buffer cut at its start.
			c.prefix = last.Text
			c.displays = c.displays[:0]
			c.insertables = c.insertables[:0]
			c.runPass(prog, enteredCode[:last.Span.Start])
		}
	}

	switch len(c.insertables) {
	case 0:
		c.state = StateEmpty
	case 1:
		c.state = StateUnique
	default:
		c.state = StateCompletedRoot
	}
}

// runPass performs one speculative completion pass and returns the ID of
// the augmented buffer it registered.
func (c *Completions) runPass(prog *program.Program, enteredCode string) source.FileID {
	augmented := make([]byte, 0, len(enteredCode)+1)
	augmented = append(augmented, enteredCode...)
	augmented = append(augmented, 0) // sentinel marks the completion offset
	offset := uint32(len(enteredCode))

	bufID := prog.Files.AddVirtual(replBufferName, augmented)

	restore := diag.Suppress(prog.Diags)
	defer restore()
	mark := prog.Mark()
	defer prog.Rollback(mark)

	complete.RunCompletionPass(prog, bufID, offset, &collector{session: c})
	return bufID
}

// Root returns the longest common prefix of the stored insertable strings,
// computed lazily and cached until the next Populate.
func (c *Completions) Root() string {
	if c.rootValid {
		return c.root
	}
	c.rootValid = true
	if len(c.insertables) == 0 {
		c.root = ""
		return c.root
	}
	root := c.insertables[0]
	for _, s := range c.insertables[1:] {
		root = commonPrefix(root, s)
	}
	c.root = root
	return c.root
}

// NextStem advances the cursor (wrapping past the end) and returns the
// selected candidate's text beyond the common root. Returns "" when there
// are no candidates.
func (c *Completions) NextStem() string {
	if len(c.insertables) == 0 {
		return ""
	}
	c.cursor++
	if c.cursor >= len(c.insertables) {
		c.cursor = 0
	}
	return c.insertables[c.cursor][len(c.Root()):]
}

// PreviousStem returns the stem for the currently selected candidate
// without moving the cursor; "" when the cursor is unset or there are no
// candidates. Despite the name it does not step backward — it re-reads the
// current selection.
func (c *Completions) PreviousStem() string {
	if c.cursor < 0 || len(c.insertables) == 0 {
		return ""
	}
	return c.insertables[c.cursor][len(c.Root()):]
}

// Reset invalidates the session. Stored data is cleared by the next
// Populate, not here; readers must check State first.
func (c *Completions) Reset() {
	c.state = StateInvalid
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// collector receives one pass's raw results and stores the survivors of the
// prefix filter on the session.
type collector struct {
	session *Completions
}

// HandleResults renders each raw result's insertable text, keeps the
// results whose insertable form starts with the session prefix, and appends
// display and prefix-stripped insertable strings in emission order.
func (col *collector) HandleResults(results []*complete.Result) {
	s := col.session
	for _, res := range results {
		insertable := toInsertableString(res)
		if !strings.HasPrefix(insertable, s.prefix) {
			continue
		}
		s.displays = append(s.displays, res.Str.Render())
		s.insertables = append(s.insertables, insertable[len(s.prefix):])
	}
}

// toInsertableString renders the literal text a candidate would insert:
// literal chunks are concatenated and the first placeholder or annotation
// chunk truncates the result.
func toInsertableString(res *complete.Result) string {
	var b strings.Builder
	for _, ch := range res.Str.Chunks() {
		if !ch.Kind.IsLiteral() {
			break
		}
		b.WriteString(ch.Text)
	}
	return b.String()
}
