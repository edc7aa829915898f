package ask

import "context"

// Prompter is the capability set every prompt implements. A backend draws
// the prompt, forwards key events to it until HandleKey reports that it
// finished, draws it one last time and reads its Value.
type Prompter[T any] interface {
	// HandleKey applies a key event and reports whether the prompt has
	// finished, either submitted or cancelled. It returns true at most once;
	// later events are ignored.
	HandleKey(ev KeyEvent) bool
	// WillHandleKey reports whether HandleKey would act on ev.
	WillHandleKey(ev KeyEvent) bool
	// Draw renders the prompt for the renderer's current DrawTime.
	Draw(r Renderer) error
	// Value returns the result. It returns ErrCancel after cancellation.
	Value() (T, error)
	// State returns the lifecycle state.
	State() State
}

// State is the lifecycle state of a prompt.
type State int

// Prompt states.
const (
	StateActive State = iota
	StateSubmitted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateSubmitted:
		return "submitted"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// lifecycle is embedded by every prompt.
type lifecycle struct {
	state State
}

// State returns the lifecycle state.
func (l *lifecycle) State() State {
	return l.state
}

func (l *lifecycle) open() bool {
	return l.state == StateActive
}

func (l *lifecycle) submitted() bool {
	return l.state == StateSubmitted
}

func (l *lifecycle) submit() bool {
	l.state = StateSubmitted
	return true
}

func (l *lifecycle) cancel() bool {
	l.state = StateCancelled
	return true
}

// err returns ErrCancel once the prompt was cancelled.
func (l *lifecycle) err() error {
	if l.state == StateCancelled {
		return ErrCancel
	}
	return nil
}

// promptOnce runs p on a terminal opened with default options.
func promptOnce[T any](ctx context.Context, p Prompter[T]) (value T, err error) {
	t, err := NewTerminal()
	if err != nil {
		return value, err
	}
	defer func() {
		if cerr := t.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Run(ctx, t, p)
}
