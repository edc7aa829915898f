package ask

import (
	"context"

	"github.com/nao1215/ask/style"
)

// Message shows a notice and waits for the user to acknowledge it with
// Enter, Space or Backspace.
type Message struct {
	lifecycle
	message string
	action  string
}

// NewMessage returns a Message whose acknowledge label is "OK".
func NewMessage(message string) *Message {
	return &Message{message: message, action: "OK"}
}

// Action sets the acknowledge label.
func (m *Message) Action(label string) *Message {
	m.action = label
	return m
}

// HandleKey implements Prompter.
func (m *Message) HandleKey(ev KeyEvent) bool {
	if !m.open() {
		return false
	}
	if ev.IsAbort() {
		return m.cancel()
	}
	if ev.Has(KeyEnter) || ev.Has(KeySpace) || ev.Has(KeyBackspace) {
		return m.submit()
	}
	return false
}

// WillHandleKey implements Prompter.
func (m *Message) WillHandleKey(ev KeyEvent) bool {
	return m.open() && (ev.IsAbort() || ev.Has(KeyEnter) || ev.Has(KeySpace) || ev.Has(KeyBackspace))
}

// Draw implements Prompter.
func (m *Message) Draw(r Renderer) error {
	if r.DrawTime() == DrawLast {
		return r.PrintPrompt(func(c Canvas) error {
			span(c, style.Message, m.message)
			c.Print("\n")
			return nil
		})
	}
	err := r.PrintPrompt(func(c Canvas) error {
		span(c, style.Message, m.message)
		c.Print("\n")
		if m.action != "" {
			span(c, style.Toggle(true), m.action)
			c.Print("\n")
		}
		return nil
	})
	r.HideCursor()
	return err
}

// Value implements Prompter.
func (m *Message) Value() (struct{}, error) {
	return struct{}{}, m.err()
}

// Prompt shows the message on the terminal.
func (m *Message) Prompt() error {
	_, err := m.PromptContext(context.Background())
	return err
}

// PromptContext shows the message on the terminal.
func (m *Message) PromptContext(ctx context.Context) (struct{}, error) {
	return promptOnce[struct{}](ctx, m)
}
