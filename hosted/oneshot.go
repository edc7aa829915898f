package hosted

import (
	"context"
	"errors"
	"sync"
)

// ErrPending is returned by Oneshot.Result before the one-shot resolves.
var ErrPending = errors.New("one-shot not resolved")

// Oneshot delivers a single value or error from the adapter to a waiting
// goroutine. It resolves exactly once; later resolutions are ignored.
type Oneshot[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func newOneshot[T any]() *Oneshot[T] {
	return &Oneshot[T]{done: make(chan struct{})}
}

// resolve stores the result and reports whether it was the first one.
func (o *Oneshot[T]) resolve(value T, err error) bool {
	first := false
	o.once.Do(func() {
		o.value = value
		o.err = err
		close(o.done)
		first = true
	})
	return first
}

func (o *Oneshot[T]) reject(err error) bool {
	var zero T
	return o.resolve(zero, err)
}

// Done is closed once the one-shot resolves.
func (o *Oneshot[T]) Done() <-chan struct{} {
	return o.done
}

// Wait blocks until the one-shot resolves or ctx ends.
func (o *Oneshot[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-o.done:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the result without blocking, or ErrPending.
func (o *Oneshot[T]) Result() (T, error) {
	select {
	case <-o.done:
		return o.value, o.err
	default:
		var zero T
		return zero, ErrPending
	}
}
