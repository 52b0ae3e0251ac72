package events

import (
	"time"

	"github.com/thenoetrevino/mission/internal/drag"
)

type subscription struct {
	id      int
	handler Handler
}

// Bus is a synchronous in-process event publisher. Handlers run on the
// publishing goroutine in subscription order. A Bus is owned by a single
// board session and is not safe for concurrent use.
type Bus struct {
	subs     []subscription
	nextID   int
	sequence int64
	now      func() time.Time
}

// NewBus creates an empty bus. now may be nil to use time.Now.
func NewBus(now func() time.Time) *Bus {
	if now == nil {
		now = time.Now
	}
	return &Bus{now: now}
}

// Publish stamps the event with a timestamp and sequence id and delivers it
func (b *Bus) Publish(event Event) {
	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	// Copy so handlers may unsubscribe while being called
	subs := append([]subscription(nil), b.subs...)
	for _, s := range subs {
		s.handler(event)
	}
}

// Subscribe registers handler for all future events
func (b *Bus) Subscribe(handler Handler) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, handler: handler})

	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// SubscribeType registers handler for events of a single type
func (b *Bus) SubscribeType(t EventType, handler Handler) func() {
	return b.Subscribe(func(e Event) {
		if e.Type == t {
			handler(e)
		}
	})
}

// BoardChanged implements drag.ChangeObserver
func (b *Bus) BoardChanged(move drag.Move) {
	b.Publish(Event{Type: EventBoardChanged, Move: &move})
}

// Notify implements drag.NotificationSink
func (b *Bus) Notify(n drag.Notification) {
	b.Publish(Event{Type: EventWorkflowTriggered, Notification: &n})
}
