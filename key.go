package ask

import (
	"slices"
	"unicode"
)

// KeyCode is a named key understood by every prompt. Backends translate
// their native key events into this vocabulary.
type KeyCode int

// Named keys.
const (
	KeyEnter KeyCode = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeySpace
	KeyHome
	KeyEnd
	KeyTab
	// KeyInterrupt is the host's interrupt chord (Ctrl+C on a terminal).
	KeyInterrupt
)

var keyCodeNames = map[KeyCode]string{
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyTab:       "Tab",
	KeyInterrupt: "Interrupt",
}

// String returns a human-readable name for debug output.
func (k KeyCode) String() string {
	if name, ok := keyCodeNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KeyEvent is everything the user typed during one read (terminal) or one
// frame (hosted backend): the printable characters and the named keys.
//
// Prompts apply Chars before Codes.
type KeyEvent struct {
	Chars []rune
	Codes []KeyCode
}

// NewKeyEvent builds a KeyEvent. Control characters are dropped from chars
// and a space character implies KeySpace.
func NewKeyEvent(chars []rune, codes ...KeyCode) KeyEvent {
	ev := KeyEvent{Codes: slices.Clone(codes)}
	for _, r := range chars {
		if unicode.IsControl(r) {
			continue
		}
		ev.Chars = append(ev.Chars, r)
		if r == ' ' && !slices.Contains(ev.Codes, KeySpace) {
			ev.Codes = append(ev.Codes, KeySpace)
		}
	}
	return ev
}

// Keys returns an event carrying only named keys.
func Keys(codes ...KeyCode) KeyEvent {
	return NewKeyEvent(nil, codes...)
}

// Typed returns an event carrying the characters of s.
func Typed(s string) KeyEvent {
	return NewKeyEvent([]rune(s))
}

// Has reports whether the named key was pressed.
func (e KeyEvent) Has(code KeyCode) bool {
	return slices.Contains(e.Codes, code)
}

// HasChar reports whether any of chars was typed.
func (e KeyEvent) HasChar(chars ...rune) bool {
	for _, r := range chars {
		if slices.Contains(e.Chars, r) {
			return true
		}
	}
	return false
}

// IsAbort reports whether the event asks to cancel the prompt.
func (e KeyEvent) IsAbort() bool {
	return e.Has(KeyEscape) || e.Has(KeyInterrupt)
}

// Empty reports whether nothing was typed.
func (e KeyEvent) Empty() bool {
	return len(e.Chars) == 0 && len(e.Codes) == 0
}

// Merge returns the concatenation of e and o.
func (e KeyEvent) Merge(o KeyEvent) KeyEvent {
	return KeyEvent{
		Chars: append(slices.Clone(e.Chars), o.Chars...),
		Codes: append(slices.Clone(e.Codes), o.Codes...),
	}
}
