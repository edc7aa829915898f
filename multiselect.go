package ask

import (
	"context"
	"slices"

	"github.com/nao1215/ask/style"
)

// MultiSelect asks for any number of options of a paginated list.
//
// Navigation is the same as Select. Space toggles the focused option,
// Enter or Backspace submits once at least Min options are selected.
type MultiSelect[T any] struct {
	optionList[T]
	min      int
	max      int
	hasMax   bool
	selected int
	invalid  error
}

// NewMultiSelect returns a MultiSelect over values, titled with fmt.Sprint.
func NewMultiSelect[T any](message string, values []T) *MultiSelect[T] {
	return NewMultiSelectOptions(message, optionsOf(values))
}

// NewMultiSelectOptions returns a MultiSelect over options. Options marked
// Active start selected.
func NewMultiSelectOptions[T any](message string, options []SelectOption[T]) *MultiSelect[T] {
	m := &MultiSelect[T]{optionList: newOptionList(message, slices.Clone(options))}
	for _, o := range m.options {
		if o.Active {
			m.selected++
		}
	}
	return m
}

// Min sets the minimum number of selected options required to submit.
func (m *MultiSelect[T]) Min(n int) *MultiSelect[T] {
	m.min = max(0, n)
	return m
}

// Max caps the number of selected options. Options that start selected
// beyond the cap are deselected, last ones first.
func (m *MultiSelect[T]) Max(n int) *MultiSelect[T] {
	m.max = max(0, n)
	m.hasMax = true
	for i := len(m.options) - 1; i >= 0 && m.selected > m.max; i-- {
		if m.options[i].Active {
			m.options[i].Active = false
			m.selected--
		}
	}
	return m
}

// Initial focuses option i.
func (m *MultiSelect[T]) Initial(i int) *MultiSelect[T] {
	m.cursor.SetFocused(i)
	return m
}

// PerPage sets how many options are shown at once.
func (m *MultiSelect[T]) PerPage(n int) *MultiSelect[T] {
	m.cursor.SetPerPage(n)
	return m
}

// Loop makes the focus wrap around at both ends of the list.
func (m *MultiSelect[T]) Loop(loop bool) *MultiSelect[T] {
	m.cursor.SetLoop(loop)
	return m
}

// Cursor returns the selection cursor.
func (m *MultiSelect[T]) Cursor() *SelectionCursor {
	return m.cursor
}

// Selected returns the number of selected options.
func (m *MultiSelect[T]) Selected() int {
	return m.selected
}

// Options returns the options with their current selection state.
func (m *MultiSelect[T]) Options() []SelectOption[T] {
	return append([]SelectOption[T]{}, m.options...)
}

// Err returns the inline error shown after a premature submission.
func (m *MultiSelect[T]) Err() error {
	return m.invalid
}

// HandleKey implements Prompter.
func (m *MultiSelect[T]) HandleKey(ev KeyEvent) bool {
	if !m.open() {
		return false
	}
	if ev.IsAbort() {
		return m.cancel()
	}
	m.navigate(ev)
	if ev.Has(KeySpace) {
		m.toggle()
	}
	if ev.Has(KeyEnter) || ev.Has(KeyBackspace) {
		if m.selected < m.min {
			m.invalid = &CountError{Min: m.min, Selected: m.selected}
			return false
		}
		m.invalid = nil
		return m.submit()
	}
	return false
}

func (m *MultiSelect[T]) toggle() {
	o := m.focused()
	if o == nil || o.Disabled {
		return
	}
	if o.Active {
		o.Active = false
		m.selected--
		return
	}
	if m.hasMax && m.selected >= m.max {
		return
	}
	o.Active = true
	m.selected++
	if m.invalid != nil && m.selected >= m.min {
		m.invalid = nil
	}
}

// WillHandleKey implements Prompter.
func (m *MultiSelect[T]) WillHandleKey(ev KeyEvent) bool {
	return m.open() && (ev.IsAbort() || isNavigationKey(ev) ||
		ev.Has(KeySpace) || ev.Has(KeyEnter) || ev.Has(KeyBackspace))
}

// Draw implements Prompter.
func (m *MultiSelect[T]) Draw(r Renderer) error {
	if r.DrawTime() == DrawLast {
		return r.PrintPrompt(func(c Canvas) error {
			span(c, style.Query(m.submitted()), m.message)
			if m.submitted() {
				c.Print(" ")
				c.Begin(style.List)
				first := true
				for _, o := range m.options {
					if !o.Active {
						continue
					}
					span(c, style.ListItem(first), o.Title)
					first = false
				}
				c.End(style.List)
			}
			c.Print("\n")
			return nil
		})
	}
	err := r.PrintPrompt(func(c Canvas) error {
		m.drawPage(c, func(i int, o SelectOption[T]) style.Region {
			return style.Option(m.flags(i, o))
		})
		if m.invalid != nil {
			span(c, style.Validator(false), m.invalid.Error())
			c.Print("\n")
		}
		return nil
	})
	r.HideCursor()
	return err
}

// Value returns the values of the selected options in list order.
func (m *MultiSelect[T]) Value() ([]T, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	values := make([]T, 0, m.selected)
	for _, o := range m.options {
		if o.Active {
			values = append(values, o.Value)
		}
	}
	return values, nil
}

// Prompt asks on the terminal.
func (m *MultiSelect[T]) Prompt() ([]T, error) {
	return m.PromptContext(context.Background())
}

// PromptContext asks on the terminal.
func (m *MultiSelect[T]) PromptContext(ctx context.Context) ([]T, error) {
	return promptOnce[[]T](ctx, m)
}
