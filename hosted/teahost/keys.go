package teahost

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nao1215/ask"
)

var keyCodes = map[tea.KeyType]ask.KeyCode{
	tea.KeyEnter:     ask.KeyEnter,
	tea.KeyBackspace: ask.KeyBackspace,
	tea.KeyDelete:    ask.KeyDelete,
	tea.KeyLeft:      ask.KeyLeft,
	tea.KeyRight:     ask.KeyRight,
	tea.KeyUp:        ask.KeyUp,
	tea.KeyDown:      ask.KeyDown,
	tea.KeyEsc:       ask.KeyEscape,
	tea.KeyHome:      ask.KeyHome,
	tea.KeyEnd:       ask.KeyEnd,
	tea.KeyCtrlA:     ask.KeyHome,
	tea.KeyCtrlE:     ask.KeyEnd,
	tea.KeyTab:       ask.KeyTab,
	tea.KeyCtrlC:     ask.KeyInterrupt,
}

// translateKey converts a Bubble Tea key into a KeyEvent. Alt chords and
// unknown keys yield an empty event.
func translateKey(msg tea.KeyMsg) ask.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return ask.KeyEvent{}
		}
		return ask.NewKeyEvent(msg.Runes)
	case tea.KeySpace:
		return ask.Typed(" ")
	}
	if code, ok := keyCodes[msg.Type]; ok {
		return ask.Keys(code)
	}
	return ask.KeyEvent{}
}
