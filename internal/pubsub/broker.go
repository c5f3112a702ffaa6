// Package pubsub provides a generic publish/subscribe event system.
// stdreg uses it to stream log entries into the TUI log overlay, but the
// broker itself is payload-agnostic.
package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultBuffer = 64

// EventType represents the type of event being published.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

// Broker fans events out to any number of subscribers.
// Publishing never blocks: slow subscribers drop events once their
// buffer fills.
type Broker[T any] struct {
	mu     sync.RWMutex
	subs   map[chan Event[T]]struct{}
	done   chan struct{}
	buffer int
}

// NewBroker creates a broker with the default subscriber buffer (64).
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBuffer)
}

// NewBrokerWithBuffer creates a broker with a custom subscriber buffer size.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan Event[T]]struct{}),
		done:   make(chan struct{}),
		buffer: size,
	}
}

// closed reports whether Close has been called. Callers must hold b.mu.
func (b *Broker[T]) closed() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Subscribe registers a new subscriber and returns its channel.
// The subscription ends and the channel closes when ctx is cancelled.
// Subscribing to a closed broker yields an already-closed channel.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed() {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := make(chan Event[T], b.buffer)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.closed() {
			return // Close already shut the channel
		}
		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish sends an event to all subscribers.
// Events are dropped for subscribers whose buffer is full.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed() {
		return
	}

	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			// Subscriber buffer full, drop rather than block
		}
	}
}

// Close shuts down the broker and closes all subscriber channels.
// Close is idempotent.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed() {
		return
	}

	close(b.done)
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
