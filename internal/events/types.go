package events

import (
	"time"

	"github.com/thenoetrevino/mission/internal/drag"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged      EventType = "board_changed"
	EventWorkflowTriggered EventType = "workflow_triggered"
)

// Event represents a board change or a workflow notification
type Event struct {
	Type         EventType
	Move         *drag.Move         `json:",omitempty"` // Set for board_changed
	Notification *drag.Notification `json:",omitempty"` // Set for workflow_triggered
	Timestamp    time.Time          // When the event occurred
	SequenceID   int64              // Monotonically increasing sequence number for ordering
}

// Handler receives published events
type Handler func(Event)
