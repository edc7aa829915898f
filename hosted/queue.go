package hosted

import "sync"

// mutation is a change of adapter state requested by the facade. apply
// runs during a tick; reject runs instead when the adapter closes first.
type mutation struct {
	target    Node
	hasTarget bool
	apply     func(a *Adapter)
	reject    func(err error)
}

// queue is the deferred-mutation queue between the facade and the adapter.
type queue struct {
	mu     sync.Mutex
	items  []mutation
	closed bool
}

// push appends m. It reports false once the queue is closed.
func (q *queue) push(m mutation) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, m)
	return true
}

// drain removes and returns the queued mutations in push order.
func (q *queue) drain() []mutation {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// close drains the queue and refuses further pushes.
func (q *queue) close() []mutation {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	items := q.items
	q.items = nil
	return items
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
