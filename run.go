package ask

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unicode"

	"github.com/mattn/go-isatty"
)

// Terminal is the blocking terminal backend. A Terminal runs one prompt at
// a time; it is not safe for concurrent use.
type Terminal struct {
	config  Config
	term    terminalInterface
	logger  *slog.Logger
	scheme  *ColorScheme
	pending []rune
	exit    func(code int)
}

// NewTerminal opens the controlling terminal, or the files given with
// WithTTY.
func NewTerminal(opts ...Option) (*Terminal, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	var ti terminalInterface
	if config.Input != nil {
		ti = newFileTerminal(config.Input, config.Output)
	} else {
		rt, err := newRealTerminal()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open terminal: %w", ErrIO, err)
		}
		ti = rt
	}

	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	if !colorEnabled(out) {
		config.NoColor = true
	}
	return newFromConfig(config, ti), nil
}

func newFromConfig(config Config, ti terminalInterface) *Terminal {
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.Logger == nil {
		config.Logger = defaultLogger()
	}
	t := &Terminal{
		config: config,
		term:   ti,
		logger: config.Logger,
		scheme: config.ColorScheme,
		exit:   os.Exit,
	}
	if config.NoColor {
		t.scheme = nil
	}
	return t
}

// colorEnabled reports whether out is a terminal and NO_COLOR is unset.
func colorEnabled(out *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Close releases the terminal.
func (t *Terminal) Close() error {
	return t.term.Close()
}

// Run presents p on t until it is submitted or cancelled and returns its
// value. Raw mode is enabled for the duration of the call and restored on
// every exit path.
//
// ctx is checked between key presses; a blocked read is not interrupted.
func Run[T any](ctx context.Context, t *Terminal, p Prompter[T]) (value T, err error) {
	if err := t.term.SetRaw(); err != nil {
		return value, fmt.Errorf("%w: failed to enter raw mode: %w", ErrIO, err)
	}
	restored := false
	restore := func() {
		if restored {
			return
		}
		restored = true
		if err := t.term.Restore(); err != nil {
			t.logger.Warn("failed to exit raw mode", "error", err)
		}
	}
	defer restore()

	r := newRenderer(t.term.Writer(), t.scheme, t.config.Symbols, t.columns, t.logger)
	defer r.restoreCursor()
	if err := p.Draw(r); err != nil {
		return value, ioError(err)
	}
	r.UpdateDrawTime()

	for {
		if err := ctx.Err(); err != nil {
			return value, err
		}
		ev, err := t.readKey()
		if err != nil {
			return value, ioError(err)
		}
		if ev.Empty() {
			continue
		}
		t.logger.Debug("key", "chars", string(ev.Chars), "codes", ev.Codes)

		finished := p.HandleKey(ev)
		if finished {
			r.UpdateDrawTime()
		}
		if err := p.Draw(r); err != nil {
			return value, ioError(err)
		}
		if finished {
			break
		}
	}

	value, err = p.Value()
	if errors.Is(err, ErrCancel) && t.config.ExitOnCancel {
		restore()
		t.exit(t.config.ExitCode)
	}
	return value, err
}

func ioError(err error) error {
	if errors.Is(err, ErrIO) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func (t *Terminal) columns() int {
	w, _, err := t.term.Size()
	if err != nil {
		t.logger.Debug("terminal size unavailable", "error", err)
	}
	return w
}

// next returns the next input rune, pushed back runes first.
func (t *Terminal) next() (rune, error) {
	if n := len(t.pending); n > 0 {
		r := t.pending[0]
		t.pending = t.pending[1:]
		return r, nil
	}
	r, _, err := t.term.ReadRune()
	return r, err
}

func (t *Terminal) unread(r rune) {
	t.pending = append([]rune{r}, t.pending...)
}

func (t *Terminal) buffered() bool {
	return len(t.pending) > 0 || t.term.Buffered()
}

// readKey reads one key press. Printable runes that are already buffered,
// as when text is pasted, are returned together in one event.
func (t *Terminal) readKey() (KeyEvent, error) {
	r, err := t.next()
	if err != nil {
		return KeyEvent{}, err
	}
	if r == '\x1b' {
		return t.readEscape()
	}
	if code, ok := t.config.KeyMap.Lookup(r); ok {
		return Keys(code), nil
	}
	if unicode.IsControl(r) {
		return KeyEvent{}, nil
	}

	chars := []rune{r}
	for t.buffered() {
		r, err := t.next()
		if err != nil {
			break
		}
		if _, bound := t.config.KeyMap.Lookup(r); bound || r == '\x1b' || unicode.IsControl(r) {
			t.unread(r)
			break
		}
		chars = append(chars, r)
	}
	return NewKeyEvent(chars), nil
}

// maxSequence bounds the length of an escape sequence body.
const maxSequence = 16

// readEscape decodes what follows ESC. A lone ESC is the Escape key.
func (t *Terminal) readEscape() (KeyEvent, error) {
	if !t.buffered() {
		return Keys(KeyEscape), nil
	}
	r, err := t.next()
	if err != nil {
		return Keys(KeyEscape), nil
	}

	seq := []rune{r}
	switch r {
	case '[':
		// CSI: parameters end with a final byte in 0x40-0x7e.
		for len(seq) < maxSequence {
			c, err := t.next()
			if err != nil {
				return KeyEvent{}, err
			}
			seq = append(seq, c)
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
	case 'O':
		c, err := t.next()
		if err != nil {
			return KeyEvent{}, err
		}
		seq = append(seq, c)
	case '\x1b':
		t.unread(r)
		return Keys(KeyEscape), nil
	default:
		t.logger.Debug("ignoring alt key", "rune", string(r))
		return KeyEvent{}, nil
	}

	if code, ok := t.config.KeyMap.LookupSequence(string(seq)); ok {
		return Keys(code), nil
	}
	t.logger.Debug("unknown escape sequence", "sequence", string(seq))
	return KeyEvent{}, nil
}
