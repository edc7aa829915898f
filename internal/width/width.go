// Package width measures how many terminal cells text occupies.
package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// String returns the display width of s. s must not contain escape
// sequences or newlines.
func String(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// Rows returns the number of terminal rows a single line of text uses in
// a terminal cols cells wide. An empty line still takes one row.
func Rows(line string, cols int) int {
	w := String(line)
	if cols <= 0 || w <= cols {
		return 1
	}
	return (w + cols - 1) / cols
}

// Position converts a cell offset inside a line into the row and column it
// lands on once the line wraps at cols cells.
func Position(x, cols int) (row, col int) {
	if cols <= 0 {
		return 0, x
	}
	return x / cols, x % cols
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
