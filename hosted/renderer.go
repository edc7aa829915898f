package hosted

import (
	"slices"
	"strings"

	"github.com/nao1215/ask"
	"github.com/nao1215/ask/internal/width"
	"github.com/nao1215/ask/style"
)

// renderer builds a Frame per draw instead of writing escape sequences.
type renderer struct {
	symbols  style.Symbols
	drawTime ask.DrawTime
	frame    Frame
}

// DrawTime implements ask.Renderer.
func (r *renderer) DrawTime() ask.DrawTime {
	return r.drawTime
}

// UpdateDrawTime implements ask.Renderer.
func (r *renderer) UpdateDrawTime() {
	r.drawTime = ask.NextDrawTime(r.drawTime)
}

// PrintPrompt implements ask.Renderer.
func (r *renderer) PrintPrompt(draw func(c ask.Canvas) error) error {
	c := &canvas{symbols: r.symbols}
	if err := draw(c); err != nil {
		return err
	}
	r.frame = Frame{Lines: c.finish()}
	return nil
}

// SetCursor implements ask.Renderer.
func (r *renderer) SetCursor(x, y int) {
	if r.drawTime != ask.DrawLast {
		r.frame.Cursor = [2]int{x, y}
	}
}

// ShowCursor implements ask.Renderer.
func (r *renderer) ShowCursor() {
	if r.drawTime != ask.DrawLast {
		r.frame.CursorVisible = true
	}
}

// HideCursor implements ask.Renderer.
func (r *renderer) HideCursor() {
	if r.drawTime != ask.DrawLast {
		r.frame.CursorVisible = false
	}
}

// canvas collects fragments line by line.
type canvas struct {
	symbols style.Symbols
	lines   [][]Fragment
	line    []Fragment
	x       int
	stack   []style.Region
}

// Begin implements ask.Canvas.
func (c *canvas) Begin(r style.Region) {
	c.stack = append(c.stack, r)
	c.emit(c.symbols.Prefix(r))
}

// End implements ask.Canvas.
func (c *canvas) End(r style.Region) {
	c.emit(c.symbols.Suffix(r))
	if n := len(c.stack); n > 0 {
		c.stack = c.stack[:n-1]
	}
}

// Print implements ask.Canvas.
func (c *canvas) Print(s string) {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			c.emit(s)
			return
		}
		c.emit(s[:i])
		c.newline()
		s = s[i+1:]
	}
}

// Position implements ask.Canvas.
func (c *canvas) Position() (x, y int) {
	return c.x, len(c.lines)
}

func (c *canvas) emit(text string) {
	if text == "" {
		return
	}
	c.line = append(c.line, Fragment{Text: text, Regions: slices.Clone(c.stack)})
	c.x += width.String(text)
}

func (c *canvas) newline() {
	c.lines = append(c.lines, c.line)
	c.line = nil
	c.x = 0
}

func (c *canvas) finish() [][]Fragment {
	if len(c.line) > 0 {
		c.newline()
	}
	return c.lines
}
