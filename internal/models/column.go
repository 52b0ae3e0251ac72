package models

import "github.com/thenoetrevino/mission/internal/types"

// Column represents a kanban board column (e.g., "Backlog", "Code Review", "Deployed")
// Columns hold their items in display order; the first item is the top of the column.
type Column struct {
	ID                  types.ColumnID   `json:"id"`                            // Unique identifier for the column
	Title               string           `json:"title"`                         // Display name of the column
	Color               string           `json:"color"`                         // Display color tag
	Items               []*Item          `json:"items"`                         // Ordered work items
	WorkflowID          types.WorkflowID `json:"workflowId,omitempty"`          // Workflow triggered on entry
	WorkflowDescription string           `json:"workflowDescription,omitempty"` // Shown when an item enters
}

// HasWorkflow reports whether moving an item into this column should surface a notification
func (c *Column) HasWorkflow() bool {
	return c.WorkflowDescription != ""
}

// IndexOf returns the position of itemID within the column, or -1
func (c *Column) IndexOf(itemID types.ItemID) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the column and its items
func (c *Column) Clone() *Column {
	clone := *c
	clone.Items = make([]*Item, len(c.Items))
	for i, item := range c.Items {
		clone.Items[i] = item.Clone()
	}
	return &clone
}

// CloneColumns deep copies a whole board
func CloneColumns(columns []*Column) []*Column {
	out := make([]*Column, len(columns))
	for i, col := range columns {
		out[i] = col.Clone()
	}
	return out
}
