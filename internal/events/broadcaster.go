// Package events fans out state snapshots to in-process subscribers.
package events

import "sync"

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

// Broadcaster delivers every published value to all current subscribers.
//
// Publish never blocks: a subscriber whose buffer is full misses that
// snapshot. Since each value is a full snapshot (never a diff), a slow
// subscriber only loses intermediate states, not consistency.
type Broadcaster[T any] struct {
	mu          sync.RWMutex
	subscribers map[chan T]struct{}
	buffer      int
}

// NewBroadcaster creates a broadcaster with the given per-subscriber buffer.
func NewBroadcaster[T any](buffer int) *Broadcaster[T] {
	if buffer < 1 {
		buffer = DefaultBuffer
	}
	return &Broadcaster[T]{
		subscribers: make(map[chan T]struct{}),
		buffer:      buffer,
	}
}

// Subscribe registers a new subscriber. If initial is non-nil it is queued
// first, so the subscriber starts from the current state.
func (b *Broadcaster[T]) Subscribe(initial *T) <-chan T {
	ch := make(chan T, b.buffer)
	if initial != nil {
		ch <- *initial
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *Broadcaster[T]) Unsubscribe(sub <-chan T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		if ch == sub {
			close(ch)
			delete(b.subscribers, ch)
			return
		}
	}
}

// Publish sends v to every subscriber, skipping those whose buffer is full.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- v:
		default:
		}
	}
}

// Len returns the number of active subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close unsubscribes everyone.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, ch)
	}
}
