package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"mira/internal/program"
)

// ErrInterrupted is returned by ReadLine when the user presses Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

var (
	candidateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle      = lipgloss.NewStyle().Faint(true)
)

// Editor reads lines in raw mode with history navigation and tab completion.
type Editor struct {
	in      *os.File
	out     io.Writer
	prompt  string
	history *History
	session *Completions
	prog    *program.Program

	reader *bufio.Reader

	// cycling is true between a Tab that populated the session and the next
	// non-Tab key; while set, Tabs swap stems in place.
	cycling bool
}

// NewEditor creates an editor over the given terminal. history may be nil.
func NewEditor(in *os.File, out io.Writer, prompt string, history *History, prog *program.Program) *Editor {
	return &Editor{
		in:      in,
		out:     out,
		prompt:  prompt,
		history: history,
		session: NewCompletions(),
		prog:    prog,
		reader:  bufio.NewReader(in),
	}
}

// SetPrompt changes the prompt used for the next ReadLine.
func (e *Editor) SetPrompt(prompt string) { e.prompt = prompt }

// ReadLine reads one line. It returns io.EOF on Ctrl-D with an empty buffer
// and ErrInterrupted on Ctrl-C.
func (e *Editor) ReadLine() (string, error) {
	fd := int(e.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer func() {
		if restoreErr := term.Restore(fd, oldState); restoreErr != nil {
			fmt.Fprintf(os.Stderr, "failed to restore terminal: %v\n", restoreErr)
		}
	}()

	var buf []rune
	cursor := 0
	pending := "" // in-progress line saved while browsing history
	e.dropCycle()
	if e.history != nil {
		e.history.ResetCursor()
	}
	e.redraw(buf, cursor)

	for {
		r, err := e.readKey()
		if err != nil {
			return "", err
		}

		switch r {
		case '\r', '\n':
			e.dropCycle()
			fmt.Fprint(e.out, "\r\n")
			return string(buf), nil

		case keyCtrlC:
			e.dropCycle()
			fmt.Fprint(e.out, "^C\r\n")
			return "", ErrInterrupted

		case keyCtrlD:
			if len(buf) == 0 {
				fmt.Fprint(e.out, "\r\n")
				return "", io.EOF
			}
			if cursor < len(buf) {
				buf = append(buf[:cursor], buf[cursor+1:]...)
			}
			e.dropCycle()

		case '\t':
			buf, cursor = e.complete(buf, cursor, false)

		case keyShiftTab:
			buf, cursor = e.complete(buf, cursor, true)

		case keyBackspace:
			if cursor > 0 {
				buf = append(buf[:cursor-1], buf[cursor:]...)
				cursor--
			}
			e.dropCycle()

		case keyUp:
			if e.history == nil {
				continue
			}
			if e.history.pos == e.history.Len() {
				pending = string(buf)
			}
			if line, ok := e.history.Prev(); ok {
				buf = []rune(line)
				cursor = len(buf)
			}
			e.dropCycle()

		case keyDown:
			if e.history == nil {
				continue
			}
			if line, ok := e.history.Next(); ok {
				buf = []rune(line)
			} else {
				buf = []rune(pending)
			}
			cursor = len(buf)
			e.dropCycle()

		case keyLeft:
			if cursor > 0 {
				cursor--
			}
			e.dropCycle()

		case keyRight:
			if cursor < len(buf) {
				cursor++
			}
			e.dropCycle()

		case keyHome, keyCtrlA:
			cursor = 0
			e.dropCycle()

		case keyEnd, keyCtrlE:
			cursor = len(buf)
			e.dropCycle()

		case keyCtrlU:
			buf = append([]rune{}, buf[cursor:]...)
			cursor = 0
			e.dropCycle()

		case keyCtrlK:
			buf = buf[:cursor]
			e.dropCycle()

		default:
			if r < 0x20 {
				continue
			}
			buf = append(buf[:cursor], append([]rune{r}, buf[cursor:]...)...)
			cursor++
			e.dropCycle()
		}

		e.redraw(buf, cursor)
	}
}

// Synthetic key codes for multi-byte sequences, outside the Unicode range.
const (
	keyCtrlA     rune = 0x01
	keyCtrlC     rune = 0x03
	keyCtrlD     rune = 0x04
	keyCtrlE     rune = 0x05
	keyCtrlK     rune = 0x0b
	keyCtrlU     rune = 0x15
	keyBackspace rune = 0x7f

	keyUp rune = utf8.MaxRune + 1 + iota
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyShiftTab
)

func (e *Editor) readKey() (rune, error) {
	r, _, err := e.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	if r != 0x1b {
		return r, nil
	}
	b, err := e.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != '[' && b != 'O' {
		return 0x1b, nil
	}
	b, err = e.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case 'A':
		return keyUp, nil
	case 'B':
		return keyDown, nil
	case 'C':
		return keyRight, nil
	case 'D':
		return keyLeft, nil
	case 'H':
		return keyHome, nil
	case 'F':
		return keyEnd, nil
	case 'Z':
		return keyShiftTab, nil
	case '1', '4', '3':
		// consume trailing '~' of sequences like ESC[1~
		final, err := e.reader.ReadByte()
		if err != nil {
			return 0, err
		}
		if final != '~' {
			return 0x1b, nil
		}
		switch b {
		case '1':
			return keyHome, nil
		case '4':
			return keyEnd, nil
		}
		return 0x1b, nil
	}
	return 0x1b, nil
}

// complete runs the tab-completion protocol. The first Tab populates a
// session from the text left of the cursor and inserts the shared root;
// repeated Tabs cycle stems in place. reverse re-reads the current stem.
func (e *Editor) complete(buf []rune, cursor int, reverse bool) ([]rune, int) {
	if !e.cycling {
		e.session.Populate(e.prog, string(buf[:cursor]))
		switch e.session.State() {
		case StateEmpty:
			return buf, cursor
		case StateUnique:
			root := e.session.Root()
			buf, cursor = insertRunes(buf, cursor, root)
			return buf, cursor
		case StateCompletedRoot:
			root := e.session.Root()
			if root != "" {
				buf, cursor = insertRunes(buf, cursor, root)
			}
			e.showCandidates()
			e.cycling = true
			return buf, cursor
		}
		return buf, cursor
	}

	// The stem inserted by the last Tab is still the current selection, so
	// re-reading it tells us how much to erase.
	old := e.session.PreviousStem()
	next := old
	if !reverse {
		next = e.session.NextStem()
	}
	return replaceTail(buf, cursor, old, next)
}

func (e *Editor) dropCycle() {
	e.cycling = false
	e.session.Reset()
}

func insertRunes(buf []rune, cursor int, s string) ([]rune, int) {
	rs := []rune(s)
	buf = append(buf[:cursor], append(rs, buf[cursor:]...)...)
	return buf, cursor + len(rs)
}

func replaceTail(buf []rune, cursor int, old, repl string) ([]rune, int) {
	n := len([]rune(old))
	if n > cursor {
		n = cursor
	}
	buf = append(buf[:cursor-n], buf[cursor:]...)
	return insertRunes(buf, cursor-n, repl)
}

// showCandidates prints the candidate list in columns below the input line.
func (e *Editor) showCandidates() {
	displays := e.session.Displays()
	if len(displays) < 2 {
		return
	}

	width := e.termWidth()
	colWidth := 0
	for _, d := range displays {
		if w := runewidth.StringWidth(d); w > colWidth {
			colWidth = w
		}
	}
	colWidth += 2
	cols := width / colWidth
	if cols < 1 {
		cols = 1
	}

	var b strings.Builder
	b.WriteString("\r\n")
	for i, d := range displays {
		b.WriteString(candidateStyle.Render(runewidth.FillRight(d, colWidth)))
		if (i+1)%cols == 0 {
			b.WriteString("\r\n")
		}
	}
	if len(displays)%cols != 0 {
		b.WriteString("\r\n")
	}
	fmt.Fprint(e.out, b.String())
}

func (e *Editor) termWidth() int {
	width, _, err := term.GetSize(int(e.in.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func (e *Editor) redraw(buf []rune, cursor int) {
	var b strings.Builder
	b.WriteString("\r\x1b[2K")
	b.WriteString(e.prompt)
	b.WriteString(string(buf))
	if back := runewidth.StringWidth(string(buf[cursor:])); back > 0 {
		fmt.Fprintf(&b, "\x1b[%dD", back)
	}
	fmt.Fprint(e.out, b.String())
}
