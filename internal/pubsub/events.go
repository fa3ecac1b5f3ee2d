// Package pubsub provides a generic publish/subscribe event system.
package pubsub

import (
	"context"
	"time"
)

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

// PublisherFunc adapts an ordinary function to the Publisher interface.
// The function runs synchronously on the publishing goroutine.
type PublisherFunc[T any] func(eventType EventType, payload T)

// Publish calls f(eventType, payload).
func (f PublisherFunc[T]) Publish(eventType EventType, payload T) {
	f(eventType, payload)
}

// Discard is a Publisher that drops every event.
func Discard[T any]() Publisher[T] {
	return PublisherFunc[T](func(EventType, T) {})
}
