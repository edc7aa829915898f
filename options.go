package ask

import (
	"fmt"

	"github.com/nao1215/ask/style"
)

// defaultPerPage is the page size of Select and MultiSelect.
const defaultPerPage = 10

// SelectOption is one choice of a Select or MultiSelect.
type SelectOption[T any] struct {
	Title       string
	Value       T
	Description string
	// Active marks the option as selected in a MultiSelect.
	Active   bool
	Disabled bool
}

// optionsOf wraps plain values, titled with fmt.Sprint.
func optionsOf[T any](values []T) []SelectOption[T] {
	options := make([]SelectOption[T], len(values))
	for i, v := range values {
		options[i] = SelectOption[T]{Title: fmt.Sprint(v), Value: v}
	}
	return options
}

// optionList is the state shared by Select and MultiSelect.
type optionList[T any] struct {
	lifecycle
	message string
	options []SelectOption[T]
	cursor  *SelectionCursor
}

func newOptionList[T any](message string, options []SelectOption[T]) optionList[T] {
	return optionList[T]{
		message: message,
		options: options,
		cursor:  NewSelectionCursor(len(options), defaultPerPage, false),
	}
}

// navigate applies the focus movement keys of ev and reports whether there
// were any.
func (l *optionList[T]) navigate(ev KeyEvent) bool {
	moved := false
	move := func(d Direction) {
		l.cursor.Move(d)
		moved = true
	}
	for _, r := range ev.Chars {
		switch r {
		case 'k':
			move(Up)
		case 'j':
			move(Down)
		case 'h':
			move(Left)
		case 'l':
			move(Right)
		}
	}
	for _, code := range ev.Codes {
		switch code {
		case KeyUp:
			move(Up)
		case KeyDown:
			move(Down)
		case KeyLeft:
			move(Left)
		case KeyRight:
			move(Right)
		}
	}
	return moved
}

func isNavigationKey(ev KeyEvent) bool {
	return ev.HasChar('k', 'j', 'h', 'l') ||
		ev.Has(KeyUp) || ev.Has(KeyDown) || ev.Has(KeyLeft) || ev.Has(KeyRight)
}

func (l *optionList[T]) focused() *SelectOption[T] {
	if len(l.options) == 0 {
		return nil
	}
	return &l.options[l.cursor.Focused()]
}

// drawPage draws the question and the focused page. region returns the
// style region of option i.
func (l *optionList[T]) drawPage(c Canvas, region func(i int, o SelectOption[T]) style.Region) {
	span(c, style.Query(false), l.message)
	c.Print("\n")
	for i := l.cursor.PageStart(); i < l.cursor.PageEnd(); i++ {
		o := l.options[i]
		r := region(i, o)
		c.Begin(r)
		c.Print(o.Title)
		if o.Description != "" && i == l.cursor.Focused() {
			c.Print(" ")
			span(c, style.Placeholder, o.Description)
		}
		c.End(r)
		c.Print("\n")
	}
	if n := l.cursor.PageCount(); n > 1 {
		page := l.cursor.Page()
		span(c, style.Page(page, n), fmt.Sprintf("%d/%d", page+1, n))
		c.Print("\n")
	}
}

func (l *optionList[T]) flags(i int, o SelectOption[T]) style.Flags {
	var f style.Flags
	if i == l.cursor.Focused() {
		f |= style.Focused
	}
	if o.Active {
		f |= style.Selected
	}
	if o.Disabled {
		f |= style.Disabled
	}
	return f
}
