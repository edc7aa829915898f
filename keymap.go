package ask

// KeyMap translates terminal input into named keys: single control runes
// and the bodies of escape sequences (the text after ESC, such as "[A").
type KeyMap struct {
	bindings  map[rune]KeyCode
	sequences map[string]KeyCode
}

// NewDefaultKeyMap returns the bindings of common terminals (xterm, VT100,
// rxvt, the Linux console and Windows Terminal).
func NewDefaultKeyMap() *KeyMap {
	return &KeyMap{
		bindings: map[rune]KeyCode{
			'\r':   KeyEnter,
			'\n':   KeyEnter,
			'\x7f': KeyBackspace,
			'\b':   KeyBackspace,
			'\x03': KeyInterrupt,
			'\t':   KeyTab,
			'\x01': KeyHome, // Ctrl+A
			'\x05': KeyEnd,  // Ctrl+E
			'\x04': KeyDelete,
		},
		sequences: map[string]KeyCode{
			"[A":  KeyUp,
			"[B":  KeyDown,
			"[C":  KeyRight,
			"[D":  KeyLeft,
			"[H":  KeyHome,
			"[F":  KeyEnd,
			"[1~": KeyHome,
			"[4~": KeyEnd,
			"[7~": KeyHome,
			"[8~": KeyEnd,
			"[3~": KeyDelete,
			"OA":  KeyUp,
			"OB":  KeyDown,
			"OC":  KeyRight,
			"OD":  KeyLeft,
			"OH":  KeyHome,
			"OF":  KeyEnd,
		},
	}
}

// Bind maps the rune r to code.
func (m *KeyMap) Bind(r rune, code KeyCode) {
	m.bindings[r] = code
}

// BindSequence maps the escape sequence body seq to code.
func (m *KeyMap) BindSequence(seq string, code KeyCode) {
	m.sequences[seq] = code
}

// Lookup returns the key bound to r.
func (m *KeyMap) Lookup(r rune) (KeyCode, bool) {
	code, ok := m.bindings[r]
	return code, ok
}

// LookupSequence returns the key bound to the escape sequence body seq.
func (m *KeyMap) LookupSequence(seq string) (KeyCode, bool) {
	code, ok := m.sequences[seq]
	return code, ok
}
