package teahost

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nao1215/ask/hosted"
	"github.com/nao1215/ask/style"
)

// Styles maps style regions to lipgloss styles.
type Styles struct {
	Query       lipgloss.Style
	Answer      lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Option      lipgloss.Style
	Focused     lipgloss.Style
	Selected    lipgloss.Style
	Disabled    lipgloss.Style
	Error       lipgloss.Style
	Page        lipgloss.Style
	Message     lipgloss.Style
	Cursor      lipgloss.Style
}

// DefaultStyles returns styles matching the terminal backend's default
// color scheme.
func DefaultStyles() Styles {
	return Styles{
		Query:       lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true),
		Answer:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
		Input:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Faint(true),
		Option:      lipgloss.NewStyle().Foreground(lipgloss.Color("#C8C8C8")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("#646464")).Faint(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
		Page:        lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Message:     lipgloss.NewStyle().Bold(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}

// For returns the style of the innermost region of f.
func (s Styles) For(f hosted.Fragment) lipgloss.Style {
	r, ok := f.Region()
	if !ok {
		return lipgloss.NewStyle()
	}
	switch r.Kind {
	case style.KindQuery:
		return s.Query
	case style.KindAnswer, style.KindList, style.KindListItem:
		return s.Answer
	case style.KindInput:
		return s.Input
	case style.KindPlaceholder:
		return s.Placeholder
	case style.KindToggle:
		if r.Selected {
			return s.Focused
		}
		return s.Option
	case style.KindOption, style.KindOptionExclusive:
		switch {
		case r.Flags.Has(style.Disabled):
			return s.Disabled
		case r.Flags.Has(style.Focused):
			return s.Focused
		case r.Flags.Has(style.Selected):
			return s.Selected
		}
		return s.Option
	case style.KindValidator:
		if r.Valid {
			return s.Answer
		}
		return s.Error
	case style.KindPage:
		return s.Page
	case style.KindMessage:
		return s.Message
	}
	return lipgloss.NewStyle()
}
