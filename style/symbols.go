package style

// Symbols holds the decorations a renderer writes when a region opens or
// closes. Decorations belong to the region and are styled with it.
type Symbols struct {
	Query         string
	Answered      string
	Pointer       string
	NoPointer     string
	Radio         string
	RadioOn       string
	Checkbox      string
	CheckboxOn    string
	ListOpen      string
	ListClose     string
	ListSeparator string
	Invalid       string
	Input         string
	TogglePad     string
}

// DefaultSymbols returns the unicode decorations used by both backends.
func DefaultSymbols() Symbols {
	return Symbols{
		Query:         "? ",
		Answered:      "✓ ",
		Pointer:       "❯ ",
		NoPointer:     "  ",
		Radio:         "○ ",
		RadioOn:       "● ",
		Checkbox:      "◯ ",
		CheckboxOn:    "◉ ",
		ListOpen:      "[",
		ListClose:     "]",
		ListSeparator: ", ",
		Invalid:       "✗ ",
		Input:         "› ",
		TogglePad:     " ",
	}
}

// ASCIISymbols returns decorations restricted to 7-bit ASCII for terminals
// without unicode fonts.
func ASCIISymbols() Symbols {
	return Symbols{
		Query:         "? ",
		Answered:      "v ",
		Pointer:       "> ",
		NoPointer:     "  ",
		Radio:         "( ) ",
		RadioOn:       "(*) ",
		Checkbox:      "[ ] ",
		CheckboxOn:    "[x] ",
		ListOpen:      "[",
		ListClose:     "]",
		ListSeparator: ", ",
		Invalid:       "x ",
		Input:         "> ",
		TogglePad:     " ",
	}
}

// Prefix returns the decoration written when r opens.
func (s Symbols) Prefix(r Region) string {
	switch r.Kind {
	case KindQuery:
		if r.Answered {
			return s.Answered
		}
		return s.Query
	case KindToggle:
		return s.TogglePad
	case KindOption:
		mark := s.Checkbox
		if r.Flags.Has(Selected) {
			mark = s.CheckboxOn
		}
		return s.pointer(r.Flags) + mark
	case KindOptionExclusive:
		mark := s.Radio
		if r.Flags.Has(Focused) {
			mark = s.RadioOn
		}
		return s.pointer(r.Flags) + mark
	case KindList:
		return s.ListOpen
	case KindListItem:
		if r.First {
			return ""
		}
		return s.ListSeparator
	case KindValidator:
		if r.Valid {
			return ""
		}
		return s.Invalid
	case KindInput:
		return s.Input
	}
	return ""
}

// Suffix returns the decoration written when r closes.
func (s Symbols) Suffix(r Region) string {
	switch r.Kind {
	case KindToggle:
		return s.TogglePad
	case KindList:
		return s.ListClose
	}
	return ""
}

func (s Symbols) pointer(f Flags) string {
	if f.Has(Focused) {
		return s.Pointer
	}
	return s.NoPointer
}
