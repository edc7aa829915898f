package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "hello", want: 5},
		{name: "east asian wide", in: "こんにちは", want: 10},
		{name: "mixed", in: "a日b", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, String(tt.in))
		})
	}
}

func TestRows(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Rows("", 80))
	assert.Equal(t, 1, Rows("abc", 3))
	assert.Equal(t, 2, Rows("abcd", 3))
	assert.Equal(t, 3, Rows("abcdefg", 3))
	assert.Equal(t, 1, Rows("abcdefg", 0))
}

func TestPosition(t *testing.T) {
	t.Parallel()

	row, col := Position(7, 3)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	row, col = Position(7, 0)
	assert.Equal(t, 0, row)
	assert.Equal(t, 7, col)
}
