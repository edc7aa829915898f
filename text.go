package ask

import "context"

// Text asks for a single line of text.
//
// Printable characters are inserted at the cursor; Backspace, Delete,
// Left, Right, Home and End edit the line; Enter validates and submits.
// With a History attached, Up and Down recall previous answers.
type Text struct {
	lineField
	validate func(string) error
	history  *History
	// histPos is the recalled entry; history.Len() means the draft.
	histPos int
	draft   string
}

// NewText returns an empty Text prompt.
func NewText(message string) *Text {
	return &Text{lineField: lineField{message: message}}
}

// Default sets the value submitted when the input is empty.
func (t *Text) Default(s string) *Text {
	t.defaultValue = s
	return t
}

// Placeholder sets the hint shown while the input is empty.
func (t *Text) Placeholder(s string) *Text {
	t.placeholder = s
	return t
}

// Initial fills the input with s and moves the cursor to its end.
func (t *Text) Initial(s string) *Text {
	t.input.SetValue(s)
	return t
}

// Validate sets a validator run on Enter. A non-nil error is shown below
// the input and keeps the prompt open.
func (t *Text) Validate(fn func(string) error) *Text {
	t.validate = fn
	return t
}

// History attaches h. Submitted answers are added to it.
func (t *Text) History(h *History) *Text {
	t.history = h
	if h != nil {
		t.histPos = h.Len()
	}
	return t
}

// Input returns the line being edited.
func (t *Text) Input() *LineInput {
	return &t.input
}

// Err returns the inline validation error, if any.
func (t *Text) Err() error {
	return t.invalid
}

// HandleKey implements Prompter.
func (t *Text) HandleKey(ev KeyEvent) bool {
	if !t.open() {
		return false
	}
	if ev.IsAbort() {
		return t.cancel()
	}
	for _, r := range ev.Chars {
		t.input.Insert(r)
	}
	for _, code := range ev.Codes {
		switch code {
		case KeyUp:
			t.recall(-1)
		case KeyDown:
			t.recall(1)
		case KeyEnter:
			if t.enter() {
				return true
			}
		default:
			t.edit(code)
		}
	}
	return false
}

func (t *Text) enter() bool {
	value := t.effective()
	if t.validate != nil {
		if t.invalid = validationError(t.validate(value)); t.invalid != nil {
			return false
		}
	}
	t.invalid = nil
	if t.history != nil {
		t.history.Add(value)
	}
	return t.submit()
}

func (t *Text) recall(step int) {
	if t.history == nil || t.history.Len() == 0 {
		return
	}
	n := t.history.Len()
	if t.histPos > n {
		t.histPos = n
	}
	next := t.histPos + step
	if next < 0 || next > n {
		return
	}
	if t.histPos == n {
		t.draft = t.input.String()
	}
	t.histPos = next
	if next == n {
		t.input.SetValue(t.draft)
		return
	}
	t.input.SetValue(t.history.At(next))
}

// WillHandleKey implements Prompter.
func (t *Text) WillHandleKey(ev KeyEvent) bool {
	if !t.open() {
		return false
	}
	if ev.IsAbort() || len(ev.Chars) > 0 || isEditKey(ev) {
		return true
	}
	return t.history != nil && (ev.Has(KeyUp) || ev.Has(KeyDown))
}

// Draw implements Prompter.
func (t *Text) Draw(r Renderer) error {
	value := t.effective()
	return t.drawLine(r, t.input.Runes(), t.input.Col(), value, value != "")
}

// Value returns the input, or the default when the input is empty.
func (t *Text) Value() (string, error) {
	if err := t.err(); err != nil {
		return "", err
	}
	return t.effective(), nil
}

// Prompt asks on the terminal.
func (t *Text) Prompt() (string, error) {
	return t.PromptContext(context.Background())
}

// PromptContext asks on the terminal.
func (t *Text) PromptContext(ctx context.Context) (string, error) {
	return promptOnce[string](ctx, t)
}
