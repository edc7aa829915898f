package hosted

import (
	"slices"
	"strings"
	"sync"

	"github.com/nao1215/ask/style"
)

// Node names a slot of the host's scene that holds one prompt.
type Node string

// Fragment is a run of text inside the style regions that were open when
// it was printed, outermost first.
type Fragment struct {
	Text    string
	Regions []style.Region
}

// Region returns the innermost region of the fragment.
func (f Fragment) Region() (style.Region, bool) {
	if len(f.Regions) == 0 {
		return style.Region{}, false
	}
	return f.Regions[len(f.Regions)-1], true
}

// Frame is the content of a node after one draw.
type Frame struct {
	Lines [][]Fragment
	// Cursor is the input cursor as (column in cells, line).
	Cursor        [2]int
	CursorVisible bool
}

// Text returns the frame without styling, lines joined by newlines.
func (f Frame) Text() string {
	var b strings.Builder
	for i, line := range f.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, frag := range line {
			b.WriteString(frag.Text)
		}
	}
	return b.String()
}

// Scene receives the frames the adapter draws. The adapter calls it from
// Tick only.
type Scene interface {
	// Replace swaps the children of node for f.
	Replace(node Node, f Frame)
	// Clear removes node and its children.
	Clear(node Node)
}

// MemoryScene is a Scene that keeps the latest frame of every node. It is
// safe for concurrent use, so a host can read it while the adapter ticks.
type MemoryScene struct {
	mu     sync.RWMutex
	frames map[Node]Frame
	order  []Node
}

// NewMemoryScene returns an empty scene.
func NewMemoryScene() *MemoryScene {
	return &MemoryScene{frames: make(map[Node]Frame)}
}

// Replace implements Scene.
func (s *MemoryScene) Replace(node Node, f Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.frames[node]; !ok {
		s.order = append(s.order, node)
	}
	s.frames[node] = f
}

// Clear implements Scene.
func (s *MemoryScene) Clear(node Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.frames[node]; !ok {
		return
	}
	delete(s.frames, node)
	s.order = slices.DeleteFunc(s.order, func(n Node) bool { return n == node })
}

// Frame returns the frame of node.
func (s *MemoryScene) Frame(node Node) (Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.frames[node]
	return f, ok
}

// Nodes returns the nodes in the order they first appeared.
func (s *MemoryScene) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}
