// Package repl implements the interactive session: line editing, history,
// completion, and incremental evaluation against a persistent program.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"mira/internal/diag"
	"mira/internal/diagfmt"
	"mira/internal/eval"
	"mira/internal/program"
	"mira/internal/replcfg"
	"mira/internal/source"
	"mira/internal/version"
)

// Options configures a Session.
type Options struct {
	Config      replcfg.Config
	HistoryPath string
	Input       *os.File
	Output      io.Writer
	Color       bool
}

// Session owns the interactive loop state.
type Session struct {
	opts    Options
	prog    *program.Program
	interp  *eval.Interp
	history *History
	editor  *Editor
	bag     *diag.Bag
}

// NewSession builds a session over a fresh interactive program.
func NewSession(opts Options) (*Session, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	fs := source.NewFileSet()
	prog := program.NewInteractive(fs)

	bag := diag.NewBag(0)
	prog.Diags.AddConsumer(diag.ConsumerFunc(func(d diag.Diagnostic) {
		bag.Add(d)
	}))

	history, err := OpenHistory(opts.HistoryPath, opts.Config.Repl.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	s := &Session{
		opts:    opts,
		prog:    prog,
		interp:  eval.New(prog, opts.Output),
		history: history,
		bag:     bag,
	}
	s.editor = NewEditor(opts.Input, opts.Output, opts.Config.Repl.Prompt, history, prog)
	return s, nil
}

// Run drives the read-eval-print loop until EOF or :quit.
func (s *Session) Run() error {
	fd := int(s.opts.Input.Fd())
	if !term.IsTerminal(fd) {
		return s.runPiped()
	}

	fmt.Fprintf(s.opts.Output, "mira %s (:help for commands, Ctrl-D to exit)\n", version.Short())
	for {
		line, err := s.editor.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			return s.shutdown()
		case errors.Is(err, ErrInterrupted):
			continue
		case err != nil:
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			quit := s.command(trimmed)
			if quit {
				return s.shutdown()
			}
			continue
		}

		s.history.Add(line)
		s.evalLine(line)
	}
}

// runPiped evaluates stdin line by line without the editor, for scripted use.
func (s *Session) runPiped() error {
	data, err := io.ReadAll(s.opts.Input)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.evalLine(line)
	}
	return nil
}

func (s *Session) evalLine(line string) {
	res := s.interp.EvalLine(line)
	if s.bag.Len() > 0 {
		s.bag.Sort()
		diagfmt.Pretty(s.opts.Output, s.bag, s.prog.Files, diagfmt.PrettyOpts{
			Color:       s.opts.Color,
			ShowContext: true,
		})
		s.bag.Clear()
	}
	if res.Echo && !res.HadErrors {
		fmt.Fprintln(s.opts.Output, hintStyle.Render("= ")+res.Value.String())
	}
}

// command handles colon commands; it reports whether the session should end.
func (s *Session) command(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		fmt.Fprint(s.opts.Output, helpText)
	case ":scope":
		for _, sym := range s.prog.Scope.Visible() {
			fmt.Fprintf(s.opts.Output, "  %s\n", sym.Name)
		}
	default:
		fmt.Fprintf(s.opts.Output, "unknown command %q (:help for commands)\n", cmd)
	}
	return false
}

func (s *Session) shutdown() error {
	if err := s.history.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save history: %v\n", err)
	}
	return nil
}

const helpText = `commands:
  :help, :h    show this help
  :scope       list names visible in the current scope
  :quit, :q    exit the session
keys:
  Tab          complete the name at the cursor; repeat to cycle candidates
  Shift-Tab    re-read the current candidate while cycling
  Up/Down      browse history
`
