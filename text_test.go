package ask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/ask/style"
)

func minLength(n int) func(string) error {
	return func(s string) error {
		if len(s) < n {
			return errors.New("too short")
		}
		return nil
	}
}

func TestTextValidation(t *testing.T) {
	t.Parallel()

	p := NewText("Name").Validate(minLength(3))
	r := &recorder{}
	require.NoError(t, p.Draw(r))
	r.UpdateDrawTime()

	assert.False(t, p.HandleKey(Typed("hi")))
	assert.False(t, p.HandleKey(Keys(KeyEnter)))
	require.NoError(t, p.Draw(r))

	assert.Equal(t, StateActive, p.State())
	require.ErrorIs(t, p.Err(), ErrValidationFailed)
	assert.Equal(t, []style.Region{style.Validator(false)}, r.find(style.KindValidator))
	assert.Equal(t, "Name\nhi\ntoo short\n", r.text)

	assert.False(t, p.HandleKey(Typed("!")))
	assert.True(t, p.HandleKey(Keys(KeyEnter)))
	r.UpdateDrawTime()
	require.NoError(t, p.Draw(r))

	got, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "hi!", got)
	assert.Nil(t, p.Err())
	assert.Equal(t, "Name hi!\n", r.text)
}

func TestTextEditing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		events []KeyEvent
		want   string
	}{
		{name: "typing", events: []KeyEvent{Typed("abc")}, want: "abc"},
		{name: "backspace", events: []KeyEvent{Typed("abc"), Keys(KeyBackspace)}, want: "ab"},
		{name: "left and insert", events: []KeyEvent{Typed("ac"), Keys(KeyLeft), Typed("b")}, want: "abc"},
		{name: "home and delete", events: []KeyEvent{Typed("xab"), Keys(KeyHome), Keys(KeyDelete)}, want: "ab"},
		{name: "end after home", events: []KeyEvent{Typed("ab"), Keys(KeyHome), Keys(KeyEnd), Typed("c")}, want: "abc"},
		{name: "chars before codes", events: []KeyEvent{NewKeyEvent([]rune("ab"), KeyLeft), Typed("x")}, want: "axb"},
		{name: "spaces are text", events: []KeyEvent{Typed("a b")}, want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewText("Name")
			for _, ev := range tt.events {
				assert.False(t, p.HandleKey(ev))
			}
			assert.Equal(t, tt.want, p.Input().String())
		})
	}
}

func TestTextDefaultAndPlaceholder(t *testing.T) {
	t.Parallel()

	p := NewText("Name").Default("anonymous").Placeholder("your name")
	r := &recorder{}
	require.NoError(t, p.Draw(r))

	assert.Equal(t, "Name (anonymous)\nyour name\n", r.text)
	assert.True(t, r.cursorVisible)
	assert.Equal(t, [2]int{0, 1}, r.cursor)
	assert.True(t, r.has(style.KindPlaceholder))

	r.UpdateDrawTime()
	assert.True(t, p.HandleKey(Keys(KeyEnter)))
	got, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "anonymous", got)
}

func TestTextInitial(t *testing.T) {
	t.Parallel()

	p := NewText("Name").Initial("gopher")
	assert.Equal(t, "gopher", p.Input().String())
	assert.Equal(t, 6, p.Input().Col())

	r := present[string](t, p, Keys(KeyLeft))
	assert.Equal(t, [2]int{5, 1}, r.cursor)
}

func TestTextValidatorSeesDefault(t *testing.T) {
	t.Parallel()

	var seen string
	p := NewText("Name").Default("dflt").Validate(func(s string) error {
		seen = s
		return nil
	})
	assert.True(t, p.HandleKey(Keys(KeyEnter)))
	assert.Equal(t, "dflt", seen)
}

func TestTextHistory(t *testing.T) {
	t.Parallel()

	h, err := NewHistory(DefaultHistoryConfig())
	require.NoError(t, err)
	h.Add("first")
	h.Add("second")

	p := NewText("Command").History(h)
	p.HandleKey(Typed("draft"))

	p.HandleKey(Keys(KeyUp))
	assert.Equal(t, "second", p.Input().String())
	p.HandleKey(Keys(KeyUp))
	assert.Equal(t, "first", p.Input().String())
	p.HandleKey(Keys(KeyUp))
	assert.Equal(t, "first", p.Input().String())
	p.HandleKey(Keys(KeyDown))
	assert.Equal(t, "second", p.Input().String())
	p.HandleKey(Keys(KeyDown))
	assert.Equal(t, "draft", p.Input().String())
	p.HandleKey(Keys(KeyDown))
	assert.Equal(t, "draft", p.Input().String())

	assert.True(t, p.HandleKey(Keys(KeyEnter)))
	assert.Equal(t, []string{"first", "second", "draft"}, h.Entries())
}

func TestTextWithoutHistoryIgnoresUpDown(t *testing.T) {
	t.Parallel()

	p := NewText("Command")
	assert.False(t, p.WillHandleKey(Keys(KeyUp)))
	p.HandleKey(Typed("x"))
	p.HandleKey(Keys(KeyUp))
	assert.Equal(t, "x", p.Input().String())
}

func TestTextCancel(t *testing.T) {
	t.Parallel()

	p := NewText("Name")
	r := present[string](t, p, Typed("abc"), Keys(KeyEscape), Typed("d"))

	assert.Equal(t, StateCancelled, p.State())
	assert.Equal(t, "Name\n", r.text)
	_, err := p.Value()
	assert.ErrorIs(t, err, ErrCancel)
	assert.False(t, p.HandleKey(Typed("e")))
	assert.Equal(t, "abc", p.Input().String())
}

func TestPassword(t *testing.T) {
	t.Parallel()

	t.Run("masked", func(t *testing.T) {
		t.Parallel()

		p := NewPassword("Password")
		r := present[string](t, p, Typed("s3cret"))
		assert.Equal(t, "Password\n******\n", r.text)
		assert.Equal(t, [2]int{6, 1}, r.cursor)

		assert.True(t, p.HandleKey(Keys(KeyEnter)))
		r.UpdateDrawTime()
		require.NoError(t, p.Draw(r))
		assert.Equal(t, "Password ******\n", r.text)

		got, err := p.Value()
		require.NoError(t, err)
		assert.Equal(t, "s3cret", got)
	})

	t.Run("hidden", func(t *testing.T) {
		t.Parallel()

		p := NewPassword("Password").Hidden(true)
		r := present[string](t, p, Typed("s3cret"), Keys(KeyBackspace), Keys(KeyEnter))
		assert.Equal(t, "Password \n", r.text)
		assert.Equal(t, []style.Region{style.Answer(false)}, r.find(style.KindAnswer))

		got, err := p.Value()
		require.NoError(t, err)
		assert.Equal(t, "s3cre", got)
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		var validated string
		p := NewPassword("Password").Default("hunter22").Validate(func(s string) error {
			validated = s
			return nil
		})
		r := present[string](t, p)
		assert.Equal(t, "Password (default)\n\n", r.text, "the default is not revealed")

		assert.True(t, p.HandleKey(Keys(KeyEnter)))
		assert.Equal(t, "hunter22", validated)
		r.UpdateDrawTime()
		require.NoError(t, p.Draw(r))
		assert.Equal(t, "Password ********\n", r.text)

		got, err := p.Value()
		require.NoError(t, err)
		assert.Equal(t, "hunter22", got)
	})

	t.Run("initial", func(t *testing.T) {
		t.Parallel()

		p := NewPassword("Password").Default("unused").Initial("abc")
		present[string](t, p, Typed("d"), Keys(KeyEnter))

		got, err := p.Value()
		require.NoError(t, err)
		assert.Equal(t, "abcd", got)
	})

	t.Run("validated", func(t *testing.T) {
		t.Parallel()

		p := NewPassword("Password").Validate(minLength(8))
		assert.False(t, p.HandleKey(NewKeyEvent([]rune("short"), KeyEnter)))
		require.Error(t, p.Err())
		assert.True(t, p.HandleKey(NewKeyEvent([]rune("-enough"), KeyEnter)))
	})
}

func TestNumberUnsigned(t *testing.T) {
	t.Parallel()

	p := NewNumber[uint8]("Workers")
	present[uint8](t, p, Typed("-"), Typed("1"), Typed("2"), Keys(KeyEnter))

	assert.Equal(t, "12", p.Input().String())
	got, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, uint8(12), got)
}

func TestNumberFloat(t *testing.T) {
	t.Parallel()

	p := NewNumber[float32]("Ratio")
	present[float32](t, p, Typed("1"), Typed("."), Typed("5"), Typed("."), Keys(KeyEnter))

	assert.Equal(t, "1.5", p.Input().String())
	got, err := p.Value()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-6)
}

func TestNumberSigned(t *testing.T) {
	t.Parallel()

	p := NewNumber[int]("Offset")
	p.HandleKey(Typed("42"))
	p.HandleKey(Keys(KeyHome))
	p.HandleKey(Typed("-"))
	assert.True(t, p.HandleKey(Keys(KeyEnter)))

	got, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, -42, got)
}

func TestNumberInvalidValue(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		p := NewNumber[int]("Offset")
		assert.True(t, p.HandleKey(Keys(KeyEnter)))
		_, err := p.Value()
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()

		p := NewNumber[uint8]("Workers")
		assert.True(t, p.HandleKey(NewKeyEvent([]rune("300"), KeyEnter)))
		_, err := p.Value()
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestNumberDefaultAndValidate(t *testing.T) {
	t.Parallel()

	p := NewNumber[int]("Port").Default(8080).Validate(func(n int) error {
		if n < 1024 {
			return errors.New("privileged port")
		}
		return nil
	})

	assert.False(t, p.HandleKey(NewKeyEvent([]rune("80"), KeyEnter)))
	assert.EqualError(t, p.Err(), "privileged port")

	p.HandleKey(Keys(KeyBackspace))
	p.HandleKey(Keys(KeyBackspace))
	assert.True(t, p.HandleKey(Keys(KeyEnter)))
	got, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, 8080, got)
}

func TestNumberWillHandleKey(t *testing.T) {
	t.Parallel()

	p := NewNumber[uint]("Count")
	assert.True(t, p.WillHandleKey(Typed("7")))
	assert.False(t, p.WillHandleKey(Typed("-")))
	assert.False(t, p.WillHandleKey(Typed("x")))
	assert.True(t, p.WillHandleKey(Keys(KeyEnter)))
}
