package drag

import (
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/types"
)

// State is the phase of the drag session
type State int

const (
	// Idle means no gesture is in progress
	Idle State = iota
	// Dragging means an item has been picked up and not yet dropped
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// MoveKind distinguishes a reorder within a column from a transfer across columns
type MoveKind int

const (
	MoveReorder MoveKind = iota
	MoveTransfer
)

func (k MoveKind) String() string {
	switch k {
	case MoveReorder:
		return "reorder"
	case MoveTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Move describes a mutation that was applied to the board
type Move struct {
	Item      *models.Item
	Kind      MoveKind
	From      types.ColumnID
	To        types.ColumnID
	FromIndex int
	ToIndex   int
}

// Notification is the advisory payload raised when an item enters a column
// that declares a workflow description
type Notification struct {
	ItemID      types.ItemID
	ItemTitle   string
	ColumnID    types.ColumnID
	ColumnTitle string
	WorkflowID  types.WorkflowID
	Description string
}

// Outcome summarizes how a drag-end was resolved
type Outcome int

const (
	// OutcomeCancelled means the gesture ended outside any drop zone
	OutcomeCancelled Outcome = iota
	// OutcomeUnresolved means the source or destination could not be found
	OutcomeUnresolved
	// OutcomeUnchanged means the drop resolved to the item's current position
	OutcomeUnchanged
	// OutcomeReordered means the item moved within its column
	OutcomeReordered
	// OutcomeTransferred means the item moved to another column
	OutcomeTransferred
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeUnresolved:
		return "unresolved"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeReordered:
		return "reordered"
	case OutcomeTransferred:
		return "transferred"
	default:
		return "unknown"
	}
}

// Changed reports whether the board was mutated
func (o Outcome) Changed() bool {
	return o == OutcomeReordered || o == OutcomeTransferred
}

// Result is returned from OnDragEnd. Move is set when the board changed and
// Notification when a workflow notification was emitted.
type Result struct {
	Outcome      Outcome
	Move         *Move
	Notification *Notification
}

// ChangeObserver is told about every applied move, after the board changed
type ChangeObserver interface {
	BoardChanged(move Move)
}

// NotificationSink receives workflow notifications
type NotificationSink interface {
	Notify(n Notification)
}
