package models

import (
	"time"

	"github.com/thenoetrevino/mission/internal/types"
)

// Item represents a single unit of trackable work on the kanban board
type Item struct {
	ID          types.ItemID `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Category    Category     `json:"type"`
	Priority    Priority     `json:"priority"`
	Project     string       `json:"project"`
	Assignee    string       `json:"assignee,omitempty"`
	Labels      []string     `json:"labels"`
	CreatedAt   time.Time    `json:"createdAt"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
}

// Clone returns a copy that shares no mutable state with the original
func (i *Item) Clone() *Item {
	clone := *i
	if i.Labels != nil {
		clone.Labels = append([]string(nil), i.Labels...)
	}
	if i.DueDate != nil {
		due := *i.DueDate
		clone.DueDate = &due
	}
	return &clone
}

// IsOverdue reports whether the item has a due date before now
func (i *Item) IsOverdue(now time.Time) bool {
	return i.DueDate != nil && i.DueDate.Before(now)
}
