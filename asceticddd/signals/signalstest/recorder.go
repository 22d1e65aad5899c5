// Package signalstest provides listeners for testing code that triggers
// signals.
package signalstest

import "sync"

// Recorder is a Listener that keeps every value it is notified with.
type Recorder[T any] struct {
	mu     sync.Mutex
	values []T
}

func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

func (r *Recorder[T]) Notify(value T) {
	r.mu.Lock()
	r.values = append(r.values, value)
	r.mu.Unlock()
}

// Values returns a copy of the recorded values in notification order.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	values := make([]T, len(r.values))
	copy(values, r.values)
	return values
}

func (r *Recorder[T]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.values = nil
	r.mu.Unlock()
}
