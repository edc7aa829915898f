package ask

import "context"

// Toggle chooses between two labels.
//
// Keys: Left/h selects the first label, Right/l the second, Enter or
// Backspace submits.
type Toggle struct {
	lifecycle
	message string
	options [2]string
	active  bool
}

// NewToggle returns a Toggle with the first option selected.
func NewToggle(message string, options [2]string) *Toggle {
	return &Toggle{message: message, options: options}
}

// Initial selects the second option when second is true.
func (t *Toggle) Initial(second bool) *Toggle {
	t.active = second
	return t
}

// HandleKey implements Prompter.
func (t *Toggle) HandleKey(ev KeyEvent) bool {
	if !t.open() {
		return false
	}
	if ev.IsAbort() {
		return t.cancel()
	}
	for _, r := range ev.Chars {
		switch r {
		case 'h':
			t.active = false
		case 'l':
			t.active = true
		}
	}
	for _, code := range ev.Codes {
		switch code {
		case KeyLeft:
			t.active = false
		case KeyRight:
			t.active = true
		case KeyEnter, KeyBackspace:
			return t.submit()
		}
	}
	return false
}

// WillHandleKey implements Prompter.
func (t *Toggle) WillHandleKey(ev KeyEvent) bool {
	if !t.open() {
		return false
	}
	return ev.IsAbort() || ev.HasChar('h', 'l') ||
		ev.Has(KeyLeft) || ev.Has(KeyRight) || ev.Has(KeyEnter) || ev.Has(KeyBackspace)
}

// Draw implements Prompter.
func (t *Toggle) Draw(r Renderer) error {
	return drawToggle(r, &t.lifecycle, t.message, t.options, t.active)
}

// Value returns the selected label.
func (t *Toggle) Value() (string, error) {
	if err := t.err(); err != nil {
		return "", err
	}
	return t.options[boolIndex(t.active)], nil
}

// Prompt asks on the terminal.
func (t *Toggle) Prompt() (string, error) {
	return t.PromptContext(context.Background())
}

// PromptContext asks on the terminal.
func (t *Toggle) PromptContext(ctx context.Context) (string, error) {
	return promptOnce[string](ctx, t)
}
