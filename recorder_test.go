package ask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nao1215/ask/style"
)

// recorder is a Renderer keeping the plain text and the regions of the
// latest draw.
type recorder struct {
	drawTime      DrawTime
	text          string
	regions       []style.Region
	cursor        [2]int
	cursorVisible bool
	draws         int
	phases        []DrawTime
}

func (r *recorder) DrawTime() DrawTime { return r.drawTime }

func (r *recorder) UpdateDrawTime() { r.drawTime = r.drawTime.next() }

func (r *recorder) PrintPrompt(draw func(c Canvas) error) error {
	c := &recordCanvas{}
	err := draw(c)
	r.text = c.b.String()
	r.regions = c.regions
	r.draws++
	r.phases = append(r.phases, r.drawTime)
	return err
}

func (r *recorder) SetCursor(x, y int) {
	if r.drawTime != DrawLast {
		r.cursor = [2]int{x, y}
	}
}

func (r *recorder) ShowCursor() {
	if r.drawTime != DrawLast {
		r.cursorVisible = true
	}
}

func (r *recorder) HideCursor() {
	if r.drawTime != DrawLast {
		r.cursorVisible = false
	}
}

// has reports whether a region of kind k was opened in the latest draw.
func (r *recorder) has(k style.Kind) bool {
	for _, reg := range r.regions {
		if reg.Kind == k {
			return true
		}
	}
	return false
}

// find returns the regions of kind k opened in the latest draw.
func (r *recorder) find(k style.Kind) []style.Region {
	var found []style.Region
	for _, reg := range r.regions {
		if reg.Kind == k {
			found = append(found, reg)
		}
	}
	return found
}

// recordCanvas writes undecorated text. Tests use ASCII, so a column is a
// byte.
type recordCanvas struct {
	b       strings.Builder
	regions []style.Region
	open    []style.Region
}

func (c *recordCanvas) Begin(r style.Region) {
	c.regions = append(c.regions, r)
	c.open = append(c.open, r)
}

func (c *recordCanvas) End(r style.Region) {
	n := len(c.open)
	if n == 0 || c.open[n-1] != r {
		panic("unbalanced region " + r.Kind.String())
	}
	c.open = c.open[:n-1]
}

func (c *recordCanvas) Print(s string) {
	c.b.WriteString(s)
}

func (c *recordCanvas) Position() (x, y int) {
	s := c.b.String()
	y = strings.Count(s, "\n")
	return len(s) - (strings.LastIndex(s, "\n") + 1), y
}

// present drives p the way a backend does: a first draw, then for every
// event HandleKey followed by a redraw, the last one after the prompt
// finished. Events after that are not delivered.
func present[T any](t *testing.T, p Prompter[T], events ...KeyEvent) *recorder {
	t.Helper()
	r := &recorder{}
	require.NoError(t, p.Draw(r))
	r.UpdateDrawTime()
	for _, ev := range events {
		finished := p.HandleKey(ev)
		if finished {
			r.UpdateDrawTime()
		}
		require.NoError(t, p.Draw(r))
		if finished {
			break
		}
	}
	return r
}
