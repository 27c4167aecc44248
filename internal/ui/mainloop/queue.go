// Package mainloop hands work from background goroutines to the single
// frame-update goroutine.
package mainloop

import "sync"

// Queue collects functions posted from any goroutine and runs them when the
// frame goroutine drains it, once per tick before input is processed.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post schedules fn for the next Drain. Safe for concurrent use.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.pending = append(q.pending, fn)
}

// Drain runs every function posted before the call, in posting order, on
// the caller's goroutine. Work posted while draining waits for the next
// Drain. It returns how many functions ran.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of functions waiting for Drain.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close drops pending work and rejects further posts.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.pending = nil
	q.mu.Unlock()
}
