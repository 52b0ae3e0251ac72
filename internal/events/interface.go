package events

import "github.com/thenoetrevino/mission/internal/drag"

// EventPublisher defines the interface for publishing and subscribing to events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// Publish delivers an event to every subscriber
	Publish(event Event)

	// Subscribe registers a handler and returns a function that removes it
	Subscribe(handler Handler) (unsubscribe func())
}

// Compile-time verification that *Bus implements the publisher and the drag hooks
var (
	_ EventPublisher        = (*Bus)(nil)
	_ drag.ChangeObserver   = (*Bus)(nil)
	_ drag.NotificationSink = (*Bus)(nil)
)
