package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/mission/internal/drag"
)

func fixedClock() time.Time {
	return time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
}

func TestBus_PublishStampsSequenceAndTime(t *testing.T) {
	bus := NewBus(fixedClock)
	var got []Event
	bus.Subscribe(func(e Event) { got = append(got, e) })

	bus.Publish(Event{Type: EventBoardChanged})
	bus.Publish(Event{Type: EventBoardChanged})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].SequenceID)
	assert.Equal(t, int64(2), got[1].SequenceID)
	assert.Equal(t, fixedClock(), got[0].Timestamp)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)
	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })

	bus.Publish(Event{Type: EventBoardChanged})
	unsubscribe()
	unsubscribe() // second call is harmless
	bus.Publish(Event{Type: EventBoardChanged})

	assert.Equal(t, 1, calls)
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus(nil)
	var order []string

	var unsubscribeFirst func()
	unsubscribeFirst = bus.Subscribe(func(Event) {
		order = append(order, "first")
		unsubscribeFirst()
	})
	bus.Subscribe(func(Event) { order = append(order, "second") })

	bus.Publish(Event{Type: EventBoardChanged})
	bus.Publish(Event{Type: EventBoardChanged})

	assert.Equal(t, []string{"first", "second", "second"}, order)
}

func TestBus_SubscribeTypeFilters(t *testing.T) {
	bus := NewBus(nil)
	var notifications []drag.Notification
	bus.SubscribeType(EventWorkflowTriggered, func(e Event) {
		notifications = append(notifications, *e.Notification)
	})

	bus.BoardChanged(drag.Move{Kind: drag.MoveTransfer, From: "a", To: "b"})
	bus.Notify(drag.Notification{ItemTitle: "Ship it", ColumnTitle: "Deployed"})

	require.Len(t, notifications, 1)
	assert.Equal(t, "Ship it", notifications[0].ItemTitle)
}

func TestBus_BoardChangedCarriesMove(t *testing.T) {
	bus := NewBus(nil)
	var got *drag.Move
	bus.SubscribeType(EventBoardChanged, func(e Event) { got = e.Move })

	bus.BoardChanged(drag.Move{Kind: drag.MoveReorder, From: "a", To: "a", FromIndex: 2, ToIndex: 0})

	require.NotNil(t, got)
	assert.Equal(t, drag.MoveReorder, got.Kind)
	assert.Equal(t, 2, got.FromIndex)
}
