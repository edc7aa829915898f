package ask

import "context"

// Number asks for a number of type N. Only characters that can form a
// valid N are accepted: digits, a leading sign for signed types and one
// decimal point for floating-point types.
//
// Input that still does not parse when submitted (an empty line, a lone
// sign, an out-of-range value) is reported by Value as ErrInvalidValue.
type Number[N Numeric] struct {
	lineField
	kind     NumberKind
	validate func(N) error
}

// NewNumber returns an empty Number prompt.
func NewNumber[N Numeric](message string) *Number[N] {
	return &Number[N]{
		lineField: lineField{message: message},
		kind:      KindOf[N](),
	}
}

// Default sets the value submitted when the input is empty.
func (n *Number[N]) Default(v N) *Number[N] {
	n.defaultValue = formatNumber(v)
	return n
}

// Initial fills the input with v.
func (n *Number[N]) Initial(v N) *Number[N] {
	n.input.SetValue(formatNumber(v))
	return n
}

// Placeholder sets the hint shown while the input is empty.
func (n *Number[N]) Placeholder(s string) *Number[N] {
	n.placeholder = s
	return n
}

// Validate sets a validator run on Enter when the input parses.
func (n *Number[N]) Validate(fn func(N) error) *Number[N] {
	n.validate = fn
	return n
}

// Input returns the line being edited.
func (n *Number[N]) Input() *LineInput {
	return &n.input
}

// Err returns the inline validation error, if any.
func (n *Number[N]) Err() error {
	return n.invalid
}

// HandleKey implements Prompter.
func (n *Number[N]) HandleKey(ev KeyEvent) bool {
	if !n.open() {
		return false
	}
	if ev.IsAbort() {
		return n.cancel()
	}
	for _, r := range ev.Chars {
		if n.kind.admits(n.input.Runes(), n.input.Col(), r) {
			n.input.Insert(r)
		}
	}
	for _, code := range ev.Codes {
		if code != KeyEnter {
			n.edit(code)
			continue
		}
		if n.validate != nil {
			if v, err := ParseNumber[N](n.effective()); err == nil {
				if n.invalid = validationError(n.validate(v)); n.invalid != nil {
					continue
				}
			}
		}
		n.invalid = nil
		return n.submit()
	}
	return false
}

// WillHandleKey implements Prompter.
func (n *Number[N]) WillHandleKey(ev KeyEvent) bool {
	if !n.open() {
		return false
	}
	if ev.IsAbort() || isEditKey(ev) {
		return true
	}
	for _, r := range ev.Chars {
		if n.kind.admits(n.input.Runes(), n.input.Col(), r) {
			return true
		}
	}
	return false
}

// Draw implements Prompter.
func (n *Number[N]) Draw(r Renderer) error {
	value := n.effective()
	return n.drawLine(r, n.input.Runes(), n.input.Col(), value, value != "")
}

// Value parses the input, or the default when the input is empty.
func (n *Number[N]) Value() (N, error) {
	if err := n.err(); err != nil {
		return 0, err
	}
	return ParseNumber[N](n.effective())
}

// Prompt asks on the terminal.
func (n *Number[N]) Prompt() (N, error) {
	return n.PromptContext(context.Background())
}

// PromptContext asks on the terminal.
func (n *Number[N]) PromptContext(ctx context.Context) (N, error) {
	return promptOnce[N](ctx, n)
}
