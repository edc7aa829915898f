package ask

import "github.com/nao1215/ask/style"

// lineField is the editing state shared by Text, Password and Number.
type lineField struct {
	lifecycle
	message      string
	input        LineInput
	placeholder  string
	defaultValue string
	maskDefault  bool // draw "(default)" instead of the default value
	invalid      error
}

// effective returns the input, or the default when the input is empty.
func (f *lineField) effective() string {
	if f.input.Len() == 0 {
		return f.defaultValue
	}
	return f.input.String()
}

// edit applies an editing key and reports whether it was one.
func (f *lineField) edit(code KeyCode) bool {
	switch code {
	case KeyBackspace:
		f.input.Backspace()
	case KeyDelete:
		f.input.Delete()
	case KeyLeft:
		f.input.MoveCursor(Left)
	case KeyRight:
		f.input.MoveCursor(Right)
	case KeyHome:
		f.input.Home()
	case KeyEnd:
		f.input.End()
	default:
		return false
	}
	return true
}

func isEditKey(ev KeyEvent) bool {
	for _, code := range ev.Codes {
		switch code {
		case KeyBackspace, KeyDelete, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyEnter:
			return true
		}
	}
	return false
}

// drawLine draws the question, the echoed input with the cursor at col of
// shown, and the inline error. The last draw shows answer next to the
// question when show is set.
func (f *lineField) drawLine(r Renderer, shown []rune, col int, answer string, show bool) error {
	if r.DrawTime() == DrawLast {
		return r.PrintPrompt(func(c Canvas) error {
			span(c, style.Query(f.submitted()), f.message)
			if f.submitted() {
				c.Print(" ")
				span(c, style.Answer(show), answer)
			}
			c.Print("\n")
			return nil
		})
	}

	var cx, cy int
	err := r.PrintPrompt(func(c Canvas) error {
		span(c, style.Query(false), f.message)
		if f.defaultValue != "" {
			label := f.defaultValue
			if f.maskDefault {
				label = "default"
			}
			c.Print(" ")
			span(c, style.Placeholder, "("+label+")")
		}
		c.Print("\n")

		c.Begin(style.Input)
		c.Print(string(shown[:col]))
		cx, cy = c.Position()
		c.Print(string(shown[col:]))
		if len(shown) == 0 && f.placeholder != "" {
			span(c, style.Placeholder, f.placeholder)
		}
		c.End(style.Input)
		c.Print("\n")

		if f.invalid != nil {
			span(c, style.Validator(false), f.invalid.Error())
			c.Print("\n")
		}
		return nil
	})
	r.SetCursor(cx, cy)
	r.ShowCursor()
	return err
}
