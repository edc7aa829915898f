package ask

// SelectionCursor tracks the focused item of a paginated list.
//
// Up and Down step one item, Left and Right one page. When loop is set the
// cursor wraps around at both ends, otherwise it stops there.
type SelectionCursor struct {
	focused int
	perPage int
	total   int
	loop    bool
}

// NewSelectionCursor returns a cursor on the first of total items.
func NewSelectionCursor(total, perPage int, loop bool) *SelectionCursor {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	return &SelectionCursor{perPage: perPage, total: total, loop: loop}
}

// Focused returns the index of the focused item.
func (c *SelectionCursor) Focused() int { return c.focused }

// Total returns the number of items.
func (c *SelectionCursor) Total() int { return c.total }

// PerPage returns the number of items shown per page.
func (c *SelectionCursor) PerPage() int { return c.perPage }

// Loop reports whether movements wrap around.
func (c *SelectionCursor) Loop() bool { return c.loop }

// SetFocused focuses item i, clamped into range.
func (c *SelectionCursor) SetFocused(i int) {
	c.focused = max(0, min(i, c.total-1))
}

// SetPerPage changes the page size, keeping the focused item.
func (c *SelectionCursor) SetPerPage(n int) {
	c.perPage = max(1, n)
}

// SetLoop enables or disables wrapping.
func (c *SelectionCursor) SetLoop(loop bool) {
	c.loop = loop
}

// Page returns the zero based page of the focused item.
func (c *SelectionCursor) Page() int {
	return c.focused / c.perPage
}

// PageCount returns the number of pages, at least 1.
func (c *SelectionCursor) PageCount() int {
	if c.total == 0 {
		return 1
	}
	return (c.total + c.perPage - 1) / c.perPage
}

// PageStart returns the index of the first item on the focused page.
func (c *SelectionCursor) PageStart() int {
	return c.Page() * c.perPage
}

// PageEnd returns one past the index of the last item on the focused page.
func (c *SelectionCursor) PageEnd() int {
	return min(c.PageStart()+c.perPage, c.total)
}

// FocusedInPage returns the position of the focused item within its page.
func (c *SelectionCursor) FocusedInPage() int {
	return c.focused - c.PageStart()
}

// Move moves the focus.
func (c *SelectionCursor) Move(d Direction) {
	if c.total == 0 {
		return
	}
	switch d {
	case Up:
		switch {
		case c.focused > 0:
			c.focused--
		case c.loop:
			c.focused = c.total - 1
		}
	case Down:
		switch {
		case c.focused < c.total-1:
			c.focused++
		case c.loop:
			c.focused = 0
		}
	case Left:
		switch {
		case c.Page() > 0:
			c.focused -= c.perPage
		case c.loop:
			last := (c.PageCount() - 1) * c.perPage
			c.focused = min(last+c.focused%c.perPage, c.total-1)
		default:
			c.focused = 0
		}
	case Right:
		switch {
		case c.Page() < c.PageCount()-1:
			c.focused = min(c.focused+c.perPage, c.total-1)
		case c.loop:
			c.focused %= c.perPage
		default:
			c.focused = c.total - 1
		}
	}
}
