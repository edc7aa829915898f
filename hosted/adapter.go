// Package hosted runs prompts inside a frame loop owned by another program.
//
// The host calls Adapter.Tick once per frame with the keys pressed since
// the previous frame. Application code, running on its own goroutine,
// talks to the adapter through a Facade: Listen shows a prompt on a node
// and returns a one-shot that resolves with the prompt's value; Clear and
// Delay work the same way. Facade calls never touch the scene directly.
// They queue a mutation that the next Tick applies.
package hosted

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/ask"
	"github.com/nao1215/ask/style"
)

// phase is where a hosted prompt is in its life.
type phase int

const (
	// phaseWaiting: attached, not drawn yet.
	phaseWaiting phase = iota
	// phaseReading: drawn, receiving keys.
	phaseReading
	// phaseClosing: submitted or cancelled, waiting for its last draw.
	phaseClosing
)

func (p phase) String() string {
	switch p {
	case phaseWaiting:
		return "waiting"
	case phaseReading:
		return "reading"
	case phaseClosing:
		return "closing"
	}
	return "unknown"
}

// prompt is the part of ask.Prompter the adapter drives. The value is
// read by the closure that resolves the one-shot.
type prompt interface {
	HandleKey(ev ask.KeyEvent) bool
	Draw(r ask.Renderer) error
	State() ask.State
}

// entry is a prompt attached to a node.
type entry struct {
	node     Node
	prompt   prompt
	phase    phase
	renderer *renderer
	resolve  func()
	reject   func(err error)
}

// delayed is a pending Delay.
type delayed struct {
	due  time.Time
	shot *Oneshot[struct{}]
}

// Adapter drives hosted prompts. Tick, Pending and Close may be called
// from different goroutines; the facade is safe for concurrent use.
type Adapter struct {
	mu      sync.Mutex
	scene   Scene
	queue   *queue
	logger  *slog.Logger
	symbols style.Symbols
	entries []*entry
	delays  []delayed
	now     time.Time
	closed  bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger. Queue drains and prompt transitions are
// logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// WithSymbols sets the decorations emitted around regions.
func WithSymbols(symbols style.Symbols) Option {
	return func(a *Adapter) {
		a.symbols = symbols
	}
}

// NewAdapter returns an adapter drawing into scene.
func NewAdapter(scene Scene, opts ...Option) *Adapter {
	a := &Adapter{
		scene:   scene,
		queue:   &queue{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		symbols: style.DefaultSymbols(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Facade returns the asynchronous interface of the adapter.
func (a *Adapter) Facade() *Facade {
	return &Facade{queue: a.queue}
}

// Pending returns the number of queued mutations, attached prompts and
// running delays.
func (a *Adapter) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queue.len() + len(a.entries) + len(a.delays)
}

// Reading returns the number of prompts receiving keys.
func (a *Adapter) Reading() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, e := range a.entries {
		if e.phase == phaseReading {
			n++
		}
	}
	return n
}

// Tick advances the adapter by one frame:
//
//  1. apply the mutations queued by the facade
//  2. resolve the delays that are due
//  3. send ev to every prompt that is reading
//  4. draw every prompt: first draw, update or last draw
//  5. resolve the one-shots of the prompts that finished and detach them
//
// One-shots resolve after the last draw, so mutations queued by code
// waiting on them apply on the next tick.
func (a *Adapter) Tick(now time.Time, ev ask.KeyEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.now = now

	if items := a.queue.drain(); len(items) > 0 {
		a.logger.Debug("applying queued mutations", "count", len(items))
		for _, m := range items {
			if m.hasTarget {
				a.logger.Debug("mutation", "node", m.target)
			}
			m.apply(a)
		}
	}

	a.fireDelays(now)

	if !ev.Empty() {
		for _, e := range a.entries {
			if e.phase == phaseReading && e.prompt.HandleKey(ev) {
				a.logger.Debug("prompt finished", "node", e.node, "state", e.prompt.State())
				e.phase = phaseClosing
			}
		}
	}

	for _, e := range a.entries {
		a.draw(e)
	}

	kept := a.entries[:0]
	for _, e := range a.entries {
		if e.phase == phaseClosing {
			e.resolve()
			continue
		}
		kept = append(kept, e)
	}
	clear(a.entries[len(kept):])
	a.entries = kept
}

func (a *Adapter) draw(e *entry) {
	switch e.phase {
	case phaseWaiting:
		a.render(e)
		e.renderer.UpdateDrawTime()
		e.phase = phaseReading
	case phaseReading:
		a.render(e)
	case phaseClosing:
		e.renderer.UpdateDrawTime()
		a.render(e)
	}
}

func (a *Adapter) render(e *entry) {
	if err := e.prompt.Draw(e.renderer); err != nil {
		a.logger.Warn("failed to draw prompt", "node", e.node, "error", err)
		return
	}
	a.scene.Replace(e.node, e.renderer.frame)
}

func (a *Adapter) fireDelays(now time.Time) {
	kept := a.delays[:0]
	for _, d := range a.delays {
		if now.Before(d.due) {
			kept = append(kept, d)
			continue
		}
		d.shot.resolve(struct{}{}, nil)
	}
	a.delays = kept
}

// attach shows e on its node, cancelling the prompt the node held.
func (a *Adapter) attach(e *entry) {
	a.detach(e.node)
	e.renderer = &renderer{symbols: a.symbols}
	a.entries = append(a.entries, e)
	a.logger.Debug("prompt attached", "node", e.node)
}

// detach cancels the prompt shown on node, if any.
func (a *Adapter) detach(node Node) {
	for i, e := range a.entries {
		if e.node != node {
			continue
		}
		a.logger.Debug("prompt replaced", "node", node, "phase", e.phase)
		e.reject(ask.ErrCancel)
		a.entries = append(a.entries[:i], a.entries[i+1:]...)
		return
	}
}

// Close rejects every pending one-shot with ask.ErrCancel. Facade calls
// made afterwards resolve immediately with ask.ErrCancel.
func (a *Adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.closed = true
	for _, m := range a.queue.close() {
		m.reject(ask.ErrCancel)
	}
	for _, e := range a.entries {
		e.reject(ask.ErrCancel)
	}
	a.entries = nil
	for _, d := range a.delays {
		d.shot.reject(ask.ErrCancel)
	}
	a.delays = nil
}
