// Package teahost hosts prompts inside a Bubble Tea program.
//
// The Model ticks a hosted.Adapter on a fixed frame interval, forwards the
// keys Bubble Tea received since the previous frame and renders the
// adapter's scene with lipgloss.
package teahost

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nao1215/ask"
	"github.com/nao1215/ask/hosted"
	"github.com/nao1215/ask/internal/width"
)

// DefaultFrameInterval is the default time between two adapter ticks.
const DefaultFrameInterval = time.Second / 30

// frameMsg triggers an adapter tick.
type frameMsg time.Time

// Model is a tea.Model showing the nodes of a hosted scene in the order
// they appeared.
type Model struct {
	adapter  *hosted.Adapter
	scene    *hosted.MemoryScene
	styles   Styles
	interval time.Duration
	keys     ask.KeyEvent
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStyles sets the region styles.
func WithStyles(s Styles) ModelOption {
	return func(m *Model) {
		m.styles = s
	}
}

// WithFrameInterval sets the time between two adapter ticks.
func WithFrameInterval(d time.Duration) ModelOption {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// NewModel returns a Model driving adapter, which must draw into scene.
func NewModel(adapter *hosted.Adapter, scene *hosted.MemoryScene, opts ...ModelOption) Model {
	m := Model{
		adapter:  adapter,
		scene:    scene,
		styles:   DefaultStyles(),
		interval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd {
	return m.frame()
}

// Update collects keys and ticks the adapter on every frame. Ctrl+C quits
// the program while no prompt is reading; otherwise it cancels the prompts.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev := translateKey(msg)
		if ev.Has(ask.KeyInterrupt) && m.adapter.Reading() == 0 {
			return m, tea.Quit
		}
		m.keys = m.keys.Merge(ev)
	case frameMsg:
		m.adapter.Tick(time.Time(msg), m.keys)
		m.keys = ask.KeyEvent{}
		return m, m.frame()
	}
	return m, nil
}

// View renders every node of the scene.
func (m Model) View() string {
	var b strings.Builder
	for _, node := range m.scene.Nodes() {
		f, ok := m.scene.Frame(node)
		if !ok {
			continue
		}
		for y, line := range f.Lines {
			cursor := -1
			if f.CursorVisible && f.Cursor[1] == y {
				cursor = f.Cursor[0]
			}
			b.WriteString(m.renderLine(line, cursor))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderLine styles the fragments of a line and draws the cursor in
// reverse video at cell cursor; a negative cursor draws none.
func (m Model) renderLine(line []hosted.Fragment, cursor int) string {
	var b strings.Builder
	col := 0
	placed := cursor < 0
	for _, f := range line {
		st := m.styles.For(f)
		if placed {
			b.WriteString(st.Render(f.Text))
			continue
		}
		for i, r := range f.Text {
			if col == cursor {
				if i > 0 {
					b.WriteString(st.Render(f.Text[:i]))
				}
				b.WriteString(m.styles.Cursor.Render(string(r)))
				if rest := f.Text[i+len(string(r)):]; rest != "" {
					b.WriteString(st.Render(rest))
				}
				placed = true
				break
			}
			col += width.String(string(r))
		}
		if !placed {
			b.WriteString(st.Render(f.Text))
		}
	}
	if !placed {
		b.WriteString(m.styles.Cursor.Render(" "))
	}
	return b.String()
}
