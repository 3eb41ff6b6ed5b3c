package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Control bytes the editor reacts to while the terminal is raw.
const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyCtrlU     = 0x15
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// errInterrupted reports a Ctrl-C during line editing: the buffer is
// discarded and the caller re-prompts.
var errInterrupted = errors.New("interrupted")

// lineEditor is a minimal raw-mode line editor: appending input,
// backspace, kill-line and history navigation. That is enough for an
// interactive shell without adopting a full readline implementation,
// and keeps Ctrl-C distinguishable from Ctrl-D, which higher-level
// terminal wrappers collapse into one error.
type lineEditor struct {
	in      *bufio.Reader
	out     io.Writer
	history *fileHistory
}

func newLineEditor(in io.Reader, out io.Writer, history *fileHistory) *lineEditor {
	return &lineEditor{
		in:      bufio.NewReader(in),
		out:     out,
		history: history,
	}
}

// ReadLine edits one line. The terminal must already be in raw mode.
// Ctrl-C returns errInterrupted, Ctrl-D on an empty line returns io.EOF.
func (e *lineEditor) ReadLine(prompt string) (string, error) {
	var buf []rune
	var draft string
	offset := 0 // history offset; 0 is the line being typed

	fmt.Fprint(e.out, prompt)
	for {
		r, _, err := e.in.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case keyCtrlC:
			fmt.Fprint(e.out, "^C\r\n")
			return "", errInterrupted

		case keyCtrlD:
			if len(buf) == 0 {
				fmt.Fprint(e.out, "\r\n")
				return "", io.EOF
			}

		case '\r', '\n':
			fmt.Fprint(e.out, "\r\n")
			return string(buf), nil

		case keyBackspace, keyDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(e.out, "\b \b")
			}

		case keyCtrlU:
			buf = buf[:0]
			e.redraw(prompt, buf)

		case keyEscape:
			switch e.readEscape() {
			case 'A': // up
				if offset < e.history.Len() {
					if offset == 0 {
						draft = string(buf)
					}
					offset++
					buf = []rune(e.history.At(offset - 1))
					e.redraw(prompt, buf)
				}
			case 'B': // down
				if offset > 0 {
					offset--
					if offset == 0 {
						buf = []rune(draft)
					} else {
						buf = []rune(e.history.At(offset - 1))
					}
					e.redraw(prompt, buf)
				}
			}

		default:
			if r >= ' ' || r == '\t' {
				buf = append(buf, r)
				fmt.Fprint(e.out, string(r))
			}
		}
	}
}

// readEscape consumes one CSI sequence and returns its final byte, or 0
// for anything that is not a well-formed sequence. Parameter bytes
// ("1;5" and friends) are swallowed so unhandled keys stay silent.
func (e *lineEditor) readEscape() rune {
	r, _, err := e.in.ReadRune()
	if err != nil || r != '[' {
		return 0
	}
	for {
		r, _, err = e.in.ReadRune()
		if err != nil {
			return 0
		}
		if (r >= '0' && r <= '9') || r == ';' {
			continue
		}
		return r
	}
}

// redraw repaints the prompt and buffer on the current terminal row.
func (e *lineEditor) redraw(prompt string, buf []rune) {
	fmt.Fprintf(e.out, "\r\x1b[K%s%s", prompt, string(buf))
}
