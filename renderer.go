package ask

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nao1215/ask/internal/width"
	"github.com/nao1215/ask/style"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearBelow = "\r\x1b[J"
)

// renderer draws prompts with ANSI escape sequences.
//
// It keeps the terminal cursor's row relative to the top of the prompt in
// cursorRow. Every draw moves back up to the top, clears everything below
// and writes the new content, so consecutive draws overwrite exactly the
// rows of the previous one.
type renderer struct {
	output    io.Writer
	scheme    *ColorScheme // nil disables colors
	symbols   style.Symbols
	cols      func() int
	logger    *slog.Logger
	drawTime  DrawTime
	lines     []string // plain text of the last draw, one entry per line
	cursorRow int
	hidden    bool // the terminal cursor is hidden
	err       error
}

func newRenderer(output io.Writer, scheme *ColorScheme, symbols style.Symbols, cols func() int, logger *slog.Logger) *renderer {
	return &renderer{
		output:  output,
		scheme:  scheme,
		symbols: symbols,
		cols:    cols,
		logger:  logger,
	}
}

// DrawTime implements Renderer.
func (r *renderer) DrawTime() DrawTime {
	return r.drawTime
}

// UpdateDrawTime implements Renderer.
func (r *renderer) UpdateDrawTime() {
	next := r.drawTime.next()
	r.logger.Debug("draw time", "from", r.drawTime, "to", next)
	r.drawTime = next
}

// PrintPrompt implements Renderer.
func (r *renderer) PrintPrompt(draw func(c Canvas) error) error {
	c := &ansiCanvas{scheme: r.scheme, symbols: r.symbols}
	if err := draw(c); err != nil {
		return err
	}
	lines := c.finish()

	var b strings.Builder
	b.WriteString(hideCursor)
	if r.cursorRow > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", r.cursorRow)
	}
	b.WriteString(clearBelow)
	b.WriteString(strings.ReplaceAll(c.out.String(), "\n", "\r\n"))

	cols := r.cols()
	rows := 0
	for _, line := range lines {
		rows += width.Rows(line, cols)
	}
	r.lines = lines
	r.hidden = true
	if r.drawTime == DrawLast {
		b.WriteString(showCursor)
		r.hidden = false
		r.cursorRow = 0
	} else {
		r.cursorRow = rows
	}
	return r.write(b.String())
}

// SetCursor implements Renderer.
func (r *renderer) SetCursor(x, y int) {
	if r.drawTime == DrawLast || y < 0 || y >= len(r.lines) {
		return
	}
	cols := r.cols()
	target := 0
	for _, line := range r.lines[:y] {
		target += width.Rows(line, cols)
	}
	row, col := width.Position(x, cols)
	target += row

	var b strings.Builder
	if up := r.cursorRow - target; up > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", up)
	} else if up < 0 {
		fmt.Fprintf(&b, "\x1b[%dB", -up)
	}
	b.WriteString("\r")
	if col > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", col)
	}
	r.cursorRow = target
	_ = r.write(b.String())
}

// ShowCursor implements Renderer.
func (r *renderer) ShowCursor() {
	if r.drawTime != DrawLast {
		r.hidden = false
		_ = r.write(showCursor)
	}
}

// HideCursor implements Renderer.
func (r *renderer) HideCursor() {
	if r.drawTime != DrawLast {
		r.hidden = true
		_ = r.write(hideCursor)
	}
}

// restoreCursor shows the cursor again when a run ends without a last
// draw.
func (r *renderer) restoreCursor() {
	if r.hidden {
		r.hidden = false
		_ = r.write(showCursor)
	}
}

// Err returns the first write error.
func (r *renderer) Err() error {
	return r.err
}

func (r *renderer) write(s string) error {
	if r.err != nil {
		return r.err
	}
	if _, err := io.WriteString(r.output, s); err != nil {
		r.err = fmt.Errorf("%w: %w", ErrIO, err)
	}
	return r.err
}

// ansiCanvas accumulates one draw. It writes colors and decorations into
// out and keeps the undecorated text of every line for row accounting.
type ansiCanvas struct {
	scheme  *ColorScheme
	symbols style.Symbols
	out     strings.Builder
	lines   []string
	line    strings.Builder
	stack   []style.Region
}

// Begin implements Canvas.
func (c *ansiCanvas) Begin(r style.Region) {
	c.stack = append(c.stack, r)
	c.color(r)
	c.text(c.symbols.Prefix(r))
}

// End implements Canvas.
func (c *ansiCanvas) End(r style.Region) {
	c.text(c.symbols.Suffix(r))
	if n := len(c.stack); n > 0 {
		c.stack = c.stack[:n-1]
	}
	if c.scheme == nil {
		return
	}
	c.out.WriteString(Reset())
	if n := len(c.stack); n > 0 {
		c.color(c.stack[n-1])
	}
}

// Print implements Canvas.
func (c *ansiCanvas) Print(s string) {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			c.text(s)
			return
		}
		c.text(s[:i])
		c.newline()
		s = s[i+1:]
	}
}

// Position implements Canvas.
func (c *ansiCanvas) Position() (x, y int) {
	return width.String(c.line.String()), len(c.lines)
}

func (c *ansiCanvas) color(r style.Region) {
	if c.scheme != nil {
		c.out.WriteString(c.scheme.colorFor(r).ToANSI())
	}
}

func (c *ansiCanvas) text(s string) {
	c.out.WriteString(s)
	c.line.WriteString(s)
}

func (c *ansiCanvas) newline() {
	if c.scheme != nil && len(c.stack) > 0 {
		c.out.WriteString(Reset())
	}
	c.out.WriteByte('\n')
	if c.scheme != nil && len(c.stack) > 0 {
		c.color(c.stack[len(c.stack)-1])
	}
	c.lines = append(c.lines, c.line.String())
	c.line.Reset()
}

// finish terminates the last line and returns the plain lines. The row
// accounting relies on the output always ending with a newline.
func (c *ansiCanvas) finish() []string {
	if c.line.Len() > 0 || len(c.lines) == 0 {
		c.newline()
	}
	if c.scheme != nil && len(c.stack) > 0 {
		c.out.WriteString(Reset())
	}
	return c.lines
}
