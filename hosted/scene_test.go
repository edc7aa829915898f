package hosted

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nao1215/ask/style"
)

func TestMemoryScene(t *testing.T) {
	t.Parallel()

	s := NewMemoryScene()
	_, ok := s.Frame("a")
	assert.False(t, ok)

	first := Frame{Lines: [][]Fragment{{{Text: "one"}}}}
	second := Frame{Lines: [][]Fragment{{{Text: "two"}}}}
	s.Replace("a", first)
	s.Replace("b", second)
	s.Replace("a", second)

	assert.Equal(t, []Node{"a", "b"}, s.Nodes(), "replacing keeps the original order")
	f, ok := s.Frame("a")
	assert.True(t, ok)
	assert.Equal(t, "two", f.Text())

	s.Clear("a")
	s.Clear("missing")
	assert.Equal(t, []Node{"b"}, s.Nodes())
	_, ok = s.Frame("a")
	assert.False(t, ok)

	nodes := s.Nodes()
	nodes[0] = "changed"
	assert.Equal(t, []Node{"b"}, s.Nodes(), "Nodes returns a copy")
}

func TestFrameText(t *testing.T) {
	t.Parallel()

	f := Frame{Lines: [][]Fragment{
		{{Text: "? "}, {Text: "Name"}},
		{},
		{{Text: "> gopher"}},
	}}
	assert.Equal(t, "? Name\n\n> gopher", f.Text())
	assert.Empty(t, Frame{}.Text())
}

func TestFragmentRegion(t *testing.T) {
	t.Parallel()

	_, ok := Fragment{Text: "plain"}.Region()
	assert.False(t, ok)

	r, ok := Fragment{Regions: []style.Region{style.Input, style.Placeholder}}.Region()
	assert.True(t, ok)
	assert.Equal(t, style.Placeholder, r)
}
