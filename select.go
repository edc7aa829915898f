package ask

import (
	"context"

	"github.com/nao1215/ask/style"
)

// Select asks for exactly one option of a paginated list.
//
// Up/k and Down/j move the focus, Left/h and Right/l move a page, and
// Enter or Backspace submits the focused option unless it is disabled.
type Select[T any] struct {
	optionList[T]
}

// NewSelect returns a Select over values, titled with fmt.Sprint.
func NewSelect[T any](message string, values []T) *Select[T] {
	return NewSelectOptions(message, optionsOf(values))
}

// NewSelectOptions returns a Select over options.
func NewSelectOptions[T any](message string, options []SelectOption[T]) *Select[T] {
	return &Select[T]{optionList: newOptionList(message, options)}
}

// Initial focuses option i.
func (s *Select[T]) Initial(i int) *Select[T] {
	s.cursor.SetFocused(i)
	return s
}

// PerPage sets how many options are shown at once.
func (s *Select[T]) PerPage(n int) *Select[T] {
	s.cursor.SetPerPage(n)
	return s
}

// Loop makes the focus wrap around at both ends of the list.
func (s *Select[T]) Loop(loop bool) *Select[T] {
	s.cursor.SetLoop(loop)
	return s
}

// Cursor returns the selection cursor.
func (s *Select[T]) Cursor() *SelectionCursor {
	return s.cursor
}

// SelectedIndex returns the index of the focused option.
func (s *Select[T]) SelectedIndex() int {
	return s.cursor.Focused()
}

// HandleKey implements Prompter.
func (s *Select[T]) HandleKey(ev KeyEvent) bool {
	if !s.open() {
		return false
	}
	if ev.IsAbort() {
		return s.cancel()
	}
	s.navigate(ev)
	if ev.Has(KeyEnter) || ev.Has(KeyBackspace) {
		if o := s.focused(); o != nil && !o.Disabled {
			return s.submit()
		}
	}
	return false
}

// WillHandleKey implements Prompter.
func (s *Select[T]) WillHandleKey(ev KeyEvent) bool {
	return s.open() && (ev.IsAbort() || isNavigationKey(ev) || ev.Has(KeyEnter) || ev.Has(KeyBackspace))
}

// Draw implements Prompter.
func (s *Select[T]) Draw(r Renderer) error {
	if r.DrawTime() == DrawLast {
		return r.PrintPrompt(func(c Canvas) error {
			span(c, style.Query(s.submitted()), s.message)
			if s.submitted() {
				c.Print(" ")
				span(c, style.Answer(true), s.focused().Title)
			}
			c.Print("\n")
			return nil
		})
	}
	err := r.PrintPrompt(func(c Canvas) error {
		s.drawPage(c, func(i int, o SelectOption[T]) style.Region {
			return style.OptionExclusive(s.flags(i, o))
		})
		return nil
	})
	r.HideCursor()
	return err
}

// Value returns the value of the submitted option.
func (s *Select[T]) Value() (T, error) {
	var zero T
	if err := s.err(); err != nil {
		return zero, err
	}
	o := s.focused()
	if o == nil {
		return zero, ErrInvalidValue
	}
	return o.Value, nil
}

// Prompt asks on the terminal.
func (s *Select[T]) Prompt() (T, error) {
	return s.PromptContext(context.Background())
}

// PromptContext asks on the terminal.
func (s *Select[T]) PromptContext(ctx context.Context) (T, error) {
	return promptOnce[T](ctx, s)
}
