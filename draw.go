package ask

import "github.com/nao1215/ask/style"

// DrawTime is the phase of a prompt's lifetime a draw belongs to.
//
// It only moves forward: DrawFirst, DrawUpdate, DrawLast.
type DrawTime int

// Draw phases.
const (
	// DrawFirst is the initial draw.
	DrawFirst DrawTime = iota
	// DrawUpdate is every redraw after input.
	DrawUpdate
	// DrawLast is the compact final draw after submission or cancellation.
	DrawLast
)

var drawTimeNames = map[DrawTime]string{
	DrawFirst:  "first",
	DrawUpdate: "update",
	DrawLast:   "last",
}

func (d DrawTime) String() string {
	if name, ok := drawTimeNames[d]; ok {
		return name
	}
	return "unknown"
}

// next returns the phase that follows d.
func (d DrawTime) next() DrawTime {
	if d == DrawFirst {
		return DrawUpdate
	}
	return DrawLast
}

// NextDrawTime returns the phase that follows d. Renderers use it to
// implement UpdateDrawTime.
func NextDrawTime(d DrawTime) DrawTime {
	return d.next()
}

// Canvas receives the content of one draw.
type Canvas interface {
	// Begin opens a style region.
	Begin(r style.Region)
	// End closes the innermost region, which must be r.
	End(r style.Region)
	// Print writes text. A newline ends the current row.
	Print(s string)
	// Position returns the column (in cells) and row of the next character
	// relative to the top-left corner of the prompt.
	Position() (x, y int)
}

// Renderer is the surface a prompt draws on. The terminal backend renders
// ANSI text; the hosted backend builds a tree of styled nodes.
type Renderer interface {
	// DrawTime returns the current phase.
	DrawTime() DrawTime
	// UpdateDrawTime advances the phase. Backends call it, prompts never do.
	UpdateDrawTime()
	// PrintPrompt replaces the previous draw with what draw emits.
	PrintPrompt(draw func(c Canvas) error) error
	// SetCursor places the input cursor at column x of row y of the prompt.
	// It is ignored in DrawLast.
	SetCursor(x, y int)
	// ShowCursor reveals the input cursor. It is ignored in DrawLast.
	ShowCursor()
	// HideCursor hides the input cursor. It is ignored in DrawLast.
	HideCursor()
}

// span prints text inside region r.
func span(c Canvas, r style.Region, text string) {
	c.Begin(r)
	c.Print(text)
	c.End(r)
}
