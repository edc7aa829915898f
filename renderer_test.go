package ask

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/ask/style"
)

func newTestRenderer(cols int, scheme *ColorScheme) (*renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	r := newRenderer(&buf, scheme, style.ASCIISymbols(), func() int { return cols }, discardLogger())
	return r, &buf
}

func printText(r *renderer, text string) error {
	return r.PrintPrompt(func(c Canvas) error {
		c.Print(text)
		return nil
	})
}

func TestRendererAddsTrailingNewline(t *testing.T) {
	t.Parallel()

	r, buf := newTestRenderer(80, nil)
	require.NoError(t, printText(r, "a\nb"))

	assert.Equal(t, hideCursor+clearBelow+"a\r\nb\r\n", buf.String())
	assert.Equal(t, 2, r.cursorRow)
}

func TestRendererOverwritesPreviousDraw(t *testing.T) {
	t.Parallel()

	r, buf := newTestRenderer(80, nil)
	require.NoError(t, printText(r, "one\ntwo\n"))
	r.UpdateDrawTime()
	buf.Reset()

	require.NoError(t, printText(r, "three\n"))
	assert.Equal(t, hideCursor+"\x1b[2A"+clearBelow+"three\r\n", buf.String())
	assert.Equal(t, 1, r.cursorRow)
}

func TestRendererCountsWrappedRows(t *testing.T) {
	t.Parallel()

	r, buf := newTestRenderer(4, nil)
	require.NoError(t, printText(r, "abcdefghij\nxy\n"))
	assert.Equal(t, 4, r.cursorRow)

	buf.Reset()
	require.NoError(t, printText(r, ""))
	assert.Equal(t, hideCursor+"\x1b[4A"+clearBelow+"\r\n", buf.String())
	assert.Equal(t, 1, r.cursorRow)
}

func TestRendererSetCursor(t *testing.T) {
	t.Parallel()

	r, buf := newTestRenderer(80, nil)
	require.NoError(t, printText(r, "question\nanswer\n"))
	buf.Reset()

	r.SetCursor(3, 1)
	assert.Equal(t, "\x1b[1A\r\x1b[3C", buf.String())
	assert.Equal(t, 1, r.cursorRow)

	buf.Reset()
	r.SetCursor(0, 0)
	assert.Equal(t, "\x1b[1A\r", buf.String())

	buf.Reset()
	require.NoError(t, printText(r, "again\n"))
	assert.Equal(t, hideCursor+clearBelow+"again\r\n", buf.String(), "cursor on the first row needs no move")
}

func TestRendererSetCursorOnWrappedLine(t *testing.T) {
	t.Parallel()

	r, buf := newTestRenderer(4, nil)
	require.NoError(t, printText(r, "q\nabcdefg\n"))
	assert.Equal(t, 3, r.cursorRow)
	buf.Reset()

	r.SetCursor(6, 1)
	assert.Equal(t, "\x1b[1A\r\x1b[2C", buf.String())
	assert.Equal(t, 2, r.cursorRow)
}

func TestRendererLastDraw(t *testing.T) {
	t.Parallel()

	r, buf := newTestRenderer(80, nil)
	require.NoError(t, printText(r, "q\n> a\n"))
	r.UpdateDrawTime()
	r.UpdateDrawTime()
	require.Equal(t, DrawLast, r.DrawTime())
	buf.Reset()

	require.NoError(t, printText(r, "q a\n"))
	assert.Equal(t, hideCursor+"\x1b[2A"+clearBelow+"q a\r\n"+showCursor, buf.String())
	assert.Equal(t, 0, r.cursorRow)

	buf.Reset()
	r.SetCursor(1, 0)
	r.HideCursor()
	r.ShowCursor()
	assert.Empty(t, buf.String())
}

func TestRendererDecorationsAndColors(t *testing.T) {
	t.Parallel()

	r, buf := newTestRenderer(80, ThemeDefault)
	var x, y int
	require.NoError(t, r.PrintPrompt(func(c Canvas) error {
		c.Begin(style.Input)
		c.Print("ab")
		x, y = c.Position()
		c.End(style.Input)
		return nil
	}))

	assert.Equal(t, 4, x, "decoration and text")
	assert.Equal(t, 0, y)
	want := hideCursor + clearBelow + ThemeDefault.Input.ToANSI() + "> ab" + Reset() + "\r\n"
	assert.Equal(t, want, buf.String())
}

func TestRendererNestedRegionsRestoreColor(t *testing.T) {
	t.Parallel()

	c := &ansiCanvas{scheme: ThemeDefault, symbols: style.ASCIISymbols()}
	c.Begin(style.Input)
	c.Begin(style.Placeholder)
	c.Print("hint")
	c.End(style.Placeholder)
	c.End(style.Input)

	want := ThemeDefault.Input.ToANSI() + "> " +
		ThemeDefault.Placeholder.ToANSI() + "hint" + Reset() + ThemeDefault.Input.ToANSI() +
		Reset()
	assert.Equal(t, want, c.out.String())
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRendererWriteError(t *testing.T) {
	t.Parallel()

	r := newRenderer(failingWriter{}, nil, style.DefaultSymbols(), func() int { return 80 }, discardLogger())
	err := printText(r, "x")
	require.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, r.Err(), ErrIO)

	p := NewConfirm("Proceed?")
	assert.ErrorIs(t, p.Draw(r), ErrIO)
}

func TestRendererRestoreCursor(t *testing.T) {
	t.Parallel()

	r, buf := newTestRenderer(80, nil)
	r.restoreCursor()
	assert.Empty(t, buf.String(), "nothing drawn, nothing to restore")

	require.NoError(t, printText(r, "q\n"))
	buf.Reset()
	r.restoreCursor()
	r.restoreCursor()
	assert.Equal(t, showCursor, buf.String())

	require.NoError(t, printText(r, "q\n"))
	r.ShowCursor()
	buf.Reset()
	r.restoreCursor()
	assert.Empty(t, buf.String(), "the prompt already showed the cursor")
}
