package ask

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/ask/style"
)

func TestColorToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"plain", Color{R: 1, G: 2, B: 3}, "\x1b[38;2;1;2;3m"},
		{"bold", Color{R: 255, Bold: true}, "\x1b[1;38;2;255;0;0m"},
		{"dim", Color{B: 9, Dim: true}, "\x1b[2;38;2;0;0;9m"},
		{"bold and dim", Color{Bold: true, Dim: true}, "\x1b[1;2;38;2;0;0;0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.color.ToANSI())
		})
	}
	assert.Equal(t, "\x1b[0m", Reset())
}

func TestThemes(t *testing.T) {
	t.Parallel()

	assert.Len(t, Themes, 5)
	for name, scheme := range Themes {
		require.NotNil(t, scheme, name)
		assert.NotEmpty(t, scheme.Name, name)
	}
	assert.Same(t, ThemeDefault, Themes["default"])
	assert.Same(t, ThemeDracula, Themes["dracula"])
}

func TestColorFor(t *testing.T) {
	t.Parallel()

	s := ThemeDark
	tests := []struct {
		name   string
		region style.Region
		want   Color
	}{
		{"query", style.Query(false), s.Query},
		{"answer", style.Answer(true), s.Answer},
		{"input", style.Input, s.Input},
		{"placeholder", style.Placeholder, s.Placeholder},
		{"toggle off", style.Toggle(false), s.Option},
		{"toggle on", style.Toggle(true), s.Focused},
		{"option", style.Option(0), s.Option},
		{"focused option", style.Option(style.Focused), s.Focused},
		{"selected option", style.Option(style.Selected), s.Selected},
		{"disabled wins", style.OptionExclusive(style.Focused | style.Disabled), s.Disabled},
		{"invalid", style.Validator(false), s.Error},
		{"page", style.Page(0, 2), s.Page},
		{"message", style.Message, s.Message},
		{"list", style.List, s.Answer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.colorFor(tt.region))
		})
	}
}

func TestParseColorScheme(t *testing.T) {
	t.Parallel()

	t.Run("partial yaml keeps defaults", func(t *testing.T) {
		t.Parallel()
		data := []byte("name: ocean\nquery:\n  r: 10\n  g: 20\n  b: 30\n  bold: true\n")
		scheme, err := ParseColorScheme(data)
		require.NoError(t, err)

		assert.Equal(t, "ocean", scheme.Name)
		assert.Equal(t, Color{R: 10, G: 20, B: 30, Bold: true}, scheme.Query)
		assert.Equal(t, ThemeDefault.Answer, scheme.Answer)
		assert.Equal(t, "default", ThemeDefault.Name, "the default theme is not modified")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		scheme, err := ParseColorScheme([]byte(`{"error": {"r": 200, "g": 0, "b": 0, "bold": false, "dim": true}}`))
		require.NoError(t, err)
		assert.Equal(t, Color{R: 200, Dim: true}, scheme.Error)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := ParseColorScheme([]byte("query: [1, 2"))
		assert.Error(t, err)
	})
}

func TestLoadColorScheme(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scheme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page:\n  r: 1\n  g: 1\n  b: 1\n"), 0o600))

	scheme, err := LoadColorScheme(path)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 1, G: 1, B: 1}, scheme.Page)

	_, err = LoadColorScheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
