package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsHas(t *testing.T) {
	t.Parallel()

	f := Focused | Disabled
	assert.True(t, f.Has(Focused))
	assert.True(t, f.Has(Disabled))
	assert.True(t, f.Has(Focused|Disabled))
	assert.False(t, f.Has(Selected))
	assert.False(t, f.Has(Focused|Selected))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "query", KindQuery.String())
	assert.Equal(t, "option_exclusive", KindOptionExclusive.String())
	assert.Equal(t, "message", KindMessage.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestSymbolsPrefix(t *testing.T) {
	t.Parallel()

	s := DefaultSymbols()
	tests := []struct {
		name   string
		region Region
		want   string
	}{
		{name: "open query", region: Query(false), want: "? "},
		{name: "answered query", region: Query(true), want: "✓ "},
		{name: "focused selected option", region: Option(Focused | Selected), want: "❯ ◉ "},
		{name: "plain option", region: Option(0), want: "  ◯ "},
		{name: "focused exclusive option", region: OptionExclusive(Focused), want: "❯ ● "},
		{name: "exclusive option", region: OptionExclusive(Disabled), want: "  ○ "},
		{name: "first list item", region: ListItem(true), want: ""},
		{name: "next list item", region: ListItem(false), want: ", "},
		{name: "invalid", region: Validator(false), want: "✗ "},
		{name: "valid", region: Validator(true), want: ""},
		{name: "input", region: Input, want: "› "},
		{name: "page", region: Page(0, 3), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Prefix(tt.region))
		})
	}
}

func TestSymbolsSuffix(t *testing.T) {
	t.Parallel()

	s := ASCIISymbols()
	assert.Equal(t, "]", s.Suffix(List))
	assert.Equal(t, " ", s.Suffix(Toggle(true)))
	assert.Equal(t, "", s.Suffix(Query(false)))
}
