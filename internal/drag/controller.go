// Package drag resolves drag-and-drop gestures into board mutations.
package drag

import (
	"log/slog"

	"github.com/thenoetrevino/mission/internal/board"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/types"
)

// Controller mediates one drag gesture at a time against a board.Store.
// Malformed gestures never produce errors; they leave the board unchanged.
type Controller struct {
	store    *board.Store
	observer ChangeObserver
	sink     NotificationSink
	logger   *slog.Logger

	state  State
	active *models.Item
}

// Option configures a Controller
type Option func(*Controller)

// WithObserver registers the observer told about applied moves
func WithObserver(o ChangeObserver) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// WithNotificationSink registers where workflow notifications go
func WithNotificationSink(s NotificationSink) Option {
	return func(c *Controller) {
		c.sink = s
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates an idle controller bound to store
func NewController(store *board.Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		logger: slog.Default(),
		state:  Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current session state
func (c *Controller) State() State {
	return c.state
}

// ActiveItem returns the item being dragged, or nil when idle or when the
// dragged id could not be found
func (c *Controller) ActiveItem() *models.Item {
	return c.active
}

// OnDragStart records the item under the pointer and enters Dragging
func (c *Controller) OnDragStart(itemID types.ItemID) {
	c.active = nil
	if item, ok := c.store.Item(itemID); ok {
		c.active = item.Clone()
	} else {
		c.logger.Debug("drag started on unknown item", "item_id", itemID)
	}
	c.state = Dragging
}

// OnDragEnd returns to Idle and applies the drop, if any. dropTargetID may be
// a column id (dropped on the column area), an item id (dropped on a card),
// or empty (released outside any drop zone).
func (c *Controller) OnDragEnd(itemID types.ItemID, dropTargetID string) Result {
	c.state = Idle
	c.active = nil

	if dropTargetID == "" {
		return Result{Outcome: OutcomeCancelled}
	}

	source, ok := c.store.LocateColumn(itemID)
	if !ok {
		c.logger.Debug("drop ignored: source not found", "item_id", itemID)
		return Result{Outcome: OutcomeUnresolved}
	}

	dest, targetIsColumn := c.store.Column(types.ColumnID(dropTargetID))
	if !targetIsColumn {
		dest, ok = c.store.LocateColumn(types.ItemID(dropTargetID))
		if !ok {
			c.logger.Debug("drop ignored: target not found", "item_id", itemID, "target", dropTargetID)
			return Result{Outcome: OutcomeUnresolved}
		}
	}

	if source.ID == dest.ID {
		return c.reorder(source, itemID, types.ItemID(dropTargetID))
	}

	before := types.ItemID("")
	if !targetIsColumn {
		before = types.ItemID(dropTargetID)
	}
	return c.transfer(source, dest, itemID, before)
}

func (c *Controller) reorder(col *models.Column, itemID, targetID types.ItemID) Result {
	from := col.IndexOf(itemID)
	to := col.IndexOf(targetID)
	// A drop on the item's own column area or on itself changes nothing
	if to < 0 || from == to {
		return Result{Outcome: OutcomeUnchanged}
	}

	item := col.Items[from].Clone()
	if !c.store.Reorder(col.ID, itemID, targetID) {
		return Result{Outcome: OutcomeUnchanged}
	}

	move := Move{
		Item:      item,
		Kind:      MoveReorder,
		From:      col.ID,
		To:        col.ID,
		FromIndex: from,
		ToIndex:   to,
	}
	c.logger.Debug("item reordered", "item_id", itemID, "column", col.ID, "from", from, "to", to)
	c.notifyObserver(move)

	return Result{Outcome: OutcomeReordered, Move: &move}
}

func (c *Controller) transfer(source, dest *models.Column, itemID, beforeID types.ItemID) Result {
	from := source.IndexOf(itemID)
	item := source.Items[from].Clone()

	if !c.store.Transfer(source.ID, dest.ID, itemID, beforeID) {
		return Result{Outcome: OutcomeUnchanged}
	}

	move := Move{
		Item:      item,
		Kind:      MoveTransfer,
		From:      source.ID,
		To:        dest.ID,
		FromIndex: from,
		ToIndex:   dest.IndexOf(itemID),
	}
	c.logger.Debug("item transferred", "item_id", itemID, "from", source.ID, "to", dest.ID, "index", move.ToIndex)
	c.notifyObserver(move)

	result := Result{Outcome: OutcomeTransferred, Move: &move}
	if dest.HasWorkflow() {
		n := Notification{
			ItemID:      item.ID,
			ItemTitle:   item.Title,
			ColumnID:    dest.ID,
			ColumnTitle: dest.Title,
			WorkflowID:  dest.WorkflowID,
			Description: dest.WorkflowDescription,
		}
		if c.sink != nil {
			c.sink.Notify(n)
		}
		result.Notification = &n
	}
	return result
}

func (c *Controller) notifyObserver(move Move) {
	if c.observer != nil {
		c.observer.BoardChanged(move)
	}
}
