package ask

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Password asks for a secret. The input is masked with '*', or not echoed
// at all when hidden.
type Password struct {
	lineField
	validate func(string) error
	hidden   bool
}

// NewPassword returns an empty, masked Password prompt.
func NewPassword(message string) *Password {
	return &Password{lineField: lineField{message: message}}
}

// Hidden suppresses echo entirely instead of masking.
func (p *Password) Hidden(hidden bool) *Password {
	p.hidden = hidden
	return p
}

// Default sets the secret submitted when the input is empty. The default
// itself is never drawn.
func (p *Password) Default(s string) *Password {
	p.defaultValue = s
	p.maskDefault = true
	return p
}

// Initial fills the input with s and moves the cursor to its end.
func (p *Password) Initial(s string) *Password {
	p.input.SetValue(s)
	return p
}

// Placeholder sets the hint shown while the input is empty.
func (p *Password) Placeholder(s string) *Password {
	p.placeholder = s
	return p
}

// Validate sets a validator run on Enter.
func (p *Password) Validate(fn func(string) error) *Password {
	p.validate = fn
	return p
}

// Err returns the inline validation error, if any.
func (p *Password) Err() error {
	return p.invalid
}

// HandleKey implements Prompter.
func (p *Password) HandleKey(ev KeyEvent) bool {
	if !p.open() {
		return false
	}
	if ev.IsAbort() {
		return p.cancel()
	}
	for _, r := range ev.Chars {
		p.input.Insert(r)
	}
	for _, code := range ev.Codes {
		if code != KeyEnter {
			p.edit(code)
			continue
		}
		if p.validate != nil {
			if p.invalid = validationError(p.validate(p.effective())); p.invalid != nil {
				continue
			}
		}
		return p.submit()
	}
	return false
}

// WillHandleKey implements Prompter.
func (p *Password) WillHandleKey(ev KeyEvent) bool {
	return p.open() && (ev.IsAbort() || len(ev.Chars) > 0 || isEditKey(ev))
}

// Draw implements Prompter.
func (p *Password) Draw(r Renderer) error {
	if p.hidden {
		return p.drawLine(r, nil, 0, "", false)
	}
	mask := []rune(strings.Repeat("*", p.input.Len()))
	answer := strings.Repeat("*", utf8.RuneCountInString(p.effective()))
	return p.drawLine(r, mask, p.input.Col(), answer, answer != "")
}

// Value implements Prompter.
func (p *Password) Value() (string, error) {
	if err := p.err(); err != nil {
		return "", err
	}
	return p.effective(), nil
}

// Prompt asks on the terminal.
func (p *Password) Prompt() (string, error) {
	return p.PromptContext(context.Background())
}

// PromptContext asks on the terminal.
func (p *Password) PromptContext(ctx context.Context) (string, error) {
	return promptOnce[string](ctx, p)
}
