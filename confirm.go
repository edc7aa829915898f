package ask

import (
	"context"

	"github.com/nao1215/ask/style"
)

// Confirm asks a yes/no question.
//
// Keys: y/Y answers yes and n/N answers no immediately; Left/h and Right/l
// move between No and Yes; Enter or Backspace submits the current answer.
type Confirm struct {
	lifecycle
	message string
	active  bool
}

// NewConfirm returns a Confirm whose initial answer is No.
func NewConfirm(message string) *Confirm {
	return &Confirm{message: message}
}

// Initial sets the initial answer.
func (c *Confirm) Initial(yes bool) *Confirm {
	c.active = yes
	return c
}

// HandleKey implements Prompter.
func (c *Confirm) HandleKey(ev KeyEvent) bool {
	if !c.open() {
		return false
	}
	if ev.IsAbort() {
		return c.cancel()
	}
	for _, r := range ev.Chars {
		switch r {
		case 'y', 'Y':
			c.active = true
			return c.submit()
		case 'n', 'N':
			c.active = false
			return c.submit()
		case 'h':
			c.active = false
		case 'l':
			c.active = true
		}
	}
	for _, code := range ev.Codes {
		switch code {
		case KeyLeft:
			c.active = false
		case KeyRight:
			c.active = true
		case KeyEnter, KeyBackspace:
			return c.submit()
		}
	}
	return false
}

// WillHandleKey implements Prompter.
func (c *Confirm) WillHandleKey(ev KeyEvent) bool {
	if !c.open() {
		return false
	}
	return ev.IsAbort() ||
		ev.HasChar('y', 'Y', 'n', 'N', 'h', 'l') ||
		ev.Has(KeyLeft) || ev.Has(KeyRight) || ev.Has(KeyEnter) || ev.Has(KeyBackspace)
}

// Draw implements Prompter.
func (c *Confirm) Draw(r Renderer) error {
	return drawToggle(r, &c.lifecycle, c.message, [2]string{"No", "Yes"}, c.active)
}

// Value implements Prompter.
func (c *Confirm) Value() (bool, error) {
	if err := c.err(); err != nil {
		return false, err
	}
	return c.active, nil
}

// Prompt asks the question on the terminal.
func (c *Confirm) Prompt() (bool, error) {
	return c.PromptContext(context.Background())
}

// PromptContext asks the question on the terminal.
func (c *Confirm) PromptContext(ctx context.Context) (bool, error) {
	return promptOnce[bool](ctx, c)
}

// drawToggle draws a question followed by two labels, the second one being
// selected when active is true.
func drawToggle(r Renderer, l *lifecycle, message string, labels [2]string, active bool) error {
	if r.DrawTime() == DrawLast {
		return r.PrintPrompt(func(c Canvas) error {
			span(c, style.Query(l.submitted()), message)
			if l.submitted() {
				c.Print(" ")
				span(c, style.Answer(true), labels[boolIndex(active)])
			}
			c.Print("\n")
			return nil
		})
	}
	err := r.PrintPrompt(func(c Canvas) error {
		span(c, style.Query(false), message)
		c.Print("\n")
		span(c, style.Toggle(!active), labels[0])
		c.Print(" ")
		span(c, style.Toggle(active), labels[1])
		c.Print("\n")
		return nil
	})
	r.HideCursor()
	return err
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
