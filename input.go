package ask

// Direction is a cursor movement.
type Direction int

// Directions. LineInput only understands Left and Right.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// LineInput is a single line of editable text with a cursor.
//
// The cursor column is always within [0, Len()].
type LineInput struct {
	value []rune
	col   int
}

// NewLineInput returns an input holding s with the cursor at its end.
func NewLineInput(s string) *LineInput {
	in := &LineInput{}
	in.SetValue(s)
	return in
}

// String returns the current text.
func (in *LineInput) String() string {
	return string(in.value)
}

// Runes returns the current text. The slice must not be modified.
func (in *LineInput) Runes() []rune {
	return in.value
}

// Col returns the cursor column.
func (in *LineInput) Col() int {
	return in.col
}

// Len returns the number of characters.
func (in *LineInput) Len() int {
	return len(in.value)
}

// Insert inserts ch at the cursor and advances the cursor.
func (in *LineInput) Insert(ch rune) {
	in.value = append(in.value, 0)
	copy(in.value[in.col+1:], in.value[in.col:])
	in.value[in.col] = ch
	in.col++
}

// Backspace removes the character before the cursor.
func (in *LineInput) Backspace() {
	if in.col == 0 || len(in.value) == 0 {
		return
	}
	in.value = append(in.value[:in.col-1], in.value[in.col:]...)
	in.col--
}

// Delete removes the character under the cursor.
func (in *LineInput) Delete() {
	if in.col >= len(in.value) {
		return
	}
	in.value = append(in.value[:in.col], in.value[in.col+1:]...)
}

// MoveCursor moves the cursor one character left or right.
func (in *LineInput) MoveCursor(d Direction) {
	switch d {
	case Left:
		if in.col > 0 {
			in.col--
		}
	case Right:
		if in.col < len(in.value) {
			in.col++
		}
	}
}

// Home moves the cursor to the beginning of the line.
func (in *LineInput) Home() {
	in.col = 0
}

// End moves the cursor to the end of the line.
func (in *LineInput) End() {
	in.col = len(in.value)
}

// SetValue replaces the text and moves the cursor to its end.
func (in *LineInput) SetValue(s string) {
	in.value = []rune(s)
	in.col = len(in.value)
}
