package ask

import (
	"bufio"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the terminal a prompt runs on.
//
// Implementations:
//   - realTerminal: the controlling terminal, via go-tty
//   - fileTerminal: an arbitrary terminal file pair, such as a pty
//   - mockTerminal: scripted input for tests
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Terminal dimensions, 80x24 when unknown
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Buffered() bool                       // Report whether input is ready without blocking
	Writer() io.Writer                    // Output for the renderer
	Close() error                         // Release the terminal
}

// realTerminal reads the controlling terminal through go-tty and writes to
// stdout (through go-colorable on Windows).
type realTerminal struct {
	tty           *tty.TTY
	output        io.Writer
	closed        bool // Close is not idempotent on Windows
	fd            int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &realTerminal{
		tty:    t,
		output: output,
		fd:     int(t.Input().Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	state, err := makeRaw(t.fd)
	if err != nil {
		return err
	}
	t.originalState = state
	return nil
}

func (t *realTerminal) Restore() error {
	err := restore(t.fd, t.originalState)
	t.originalState = nil
	return err
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Writer() io.Writer {
	return t.output
}

func (t *realTerminal) Close() error {
	if t.closed || t.tty == nil {
		return nil
	}
	t.closed = true
	return t.tty.Close()
}

// fileTerminal drives a terminal given as a pair of files.
type fileTerminal struct {
	in            *os.File
	out           *os.File
	reader        *bufio.Reader
	originalState *term.State
}

func newFileTerminal(in, out *os.File) *fileTerminal {
	if out == nil {
		out = os.Stdout
	}
	return &fileTerminal{in: in, out: out, reader: bufio.NewReader(in)}
}

func (t *fileTerminal) SetRaw() error {
	state, err := makeRaw(int(t.in.Fd()))
	if err != nil {
		return err
	}
	t.originalState = state
	return nil
}

func (t *fileTerminal) Restore() error {
	err := restore(int(t.in.Fd()), t.originalState)
	t.originalState = nil
	return err
}

func (t *fileTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *fileTerminal) ReadRune() (rune, int, error) {
	return t.reader.ReadRune()
}

func (t *fileTerminal) Buffered() bool {
	return t.reader.Buffered() > 0
}

func (t *fileTerminal) Writer() io.Writer {
	return t.out
}

func (t *fileTerminal) Close() error {
	return nil
}

// makeRaw puts fd into raw mode and returns the state to restore. It does
// nothing when fd is not a terminal.
func makeRaw(fd int) (*term.State, error) {
	if !term.IsTerminal(fd) {
		return nil, nil
	}
	return term.MakeRaw(fd)
}

func restore(fd int, state *term.State) error {
	if state == nil {
		return nil
	}
	return term.Restore(fd, state)
}
