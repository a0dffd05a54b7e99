// Package mailbox provides a single-slot overwrite channel between one
// producer and one consumer. A new Publish always replaces an unread value;
// the producer never blocks and the slot never grows. Suitable for
// continuously-resampled quantities where only the most recent value
// matters, not for discrete events.
package mailbox

import "sync"

type Mailbox[T any] struct {
	mu   sync.Mutex
	val  T
	full bool
}

func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{}
}

// Publish stores v, overwriting any unread value. Never blocks, never fails.
func (m *Mailbox[T]) Publish(v T) {
	m.mu.Lock()
	m.val = v
	m.full = true
	m.mu.Unlock()
}

// TryTake returns and clears the pending value, if any. Never blocks.
func (m *Mailbox[T]) TryTake() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.full {
		var zero T
		return zero, false
	}
	m.full = false
	return m.val, true
}
