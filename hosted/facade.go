package hosted

import (
	"context"
	"time"

	"github.com/nao1215/ask"
)

// Facade is the asynchronous interface of an Adapter. Its methods queue a
// mutation and return at once; the returned one-shot resolves during a
// later Tick.
type Facade struct {
	queue *queue
}

// Listen shows p on node and resolves with its value once the user submits
// it, or with ask.ErrCancel when it is cancelled, replaced by another
// prompt, cleared or the adapter closes.
func Listen[T any](f *Facade, p ask.Prompter[T], node Node) *Oneshot[T] {
	shot := newOneshot[T]()
	ok := f.queue.push(mutation{
		target:    node,
		hasTarget: true,
		apply: func(a *Adapter) {
			a.attach(&entry{
				node:    node,
				prompt:  p,
				resolve: func() { shot.resolve(p.Value()) },
				reject:  func(err error) { shot.reject(err) },
			})
		},
		reject: func(err error) { shot.reject(err) },
	})
	if !ok {
		shot.reject(ask.ErrCancel)
	}
	return shot
}

// Ask shows p on node and waits for its value.
func Ask[T any](ctx context.Context, f *Facade, p ask.Prompter[T], node Node) (T, error) {
	return Listen(f, p, node).Wait(ctx)
}

// Clear removes node from the scene, cancelling the prompt it shows.
func (f *Facade) Clear(node Node) *Oneshot[struct{}] {
	shot := newOneshot[struct{}]()
	ok := f.queue.push(mutation{
		target:    node,
		hasTarget: true,
		apply: func(a *Adapter) {
			a.detach(node)
			a.scene.Clear(node)
			shot.resolve(struct{}{}, nil)
		},
		reject: func(err error) { shot.reject(err) },
	})
	if !ok {
		shot.reject(ask.ErrCancel)
	}
	return shot
}

// Delay resolves once d has elapsed on the adapter's clock, measured from
// the tick that picks the request up.
func (f *Facade) Delay(d time.Duration) *Oneshot[struct{}] {
	shot := newOneshot[struct{}]()
	ok := f.queue.push(mutation{
		apply: func(a *Adapter) {
			a.delays = append(a.delays, delayed{due: a.now.Add(d), shot: shot})
		},
		reject: func(err error) { shot.reject(err) },
	})
	if !ok {
		shot.reject(ask.ErrCancel)
	}
	return shot
}
