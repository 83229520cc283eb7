package applet

import (
	"sync"
	"time"

	"github.com/chris14257/winston/internal/input/key"
)

// Queue is an unbounded FIFO of key events with a single consumer.
// Push never blocks and never drops; the design accepts unbounded growth
// if the consumer cannot keep up. Pop waits at most the given duration,
// which is how workers periodically re-check their running flag.
type Queue struct {
	mu    sync.Mutex
	items []key.Event
	wake  chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Push appends an event. Safe for concurrent producers.
func (q *Queue) Push(ev key.Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Pop removes and returns the oldest event, waiting up to the given
// duration for one to arrive. Returns false on timeout.
func (q *Queue) Pop(wait time.Duration) (key.Event, bool) {
	deadline := time.Now().Add(wait)
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			ev := q.items[0]
			q.items = q.items[1:]
			if len(q.items) == 0 {
				q.items = nil
			}
			q.mu.Unlock()
			return ev, true
		}
		q.mu.Unlock()

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return key.Event{}, false
		}

		timer := time.NewTimer(remaining)
		select {
		case <-q.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
