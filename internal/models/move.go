package models

import (
	"time"

	"github.com/thenoetrevino/mission/internal/types"
)

// MoveRecord is one entry of the board's move history
type MoveRecord struct {
	ID         int64          `json:"id"`
	ItemID     types.ItemID   `json:"itemId"`
	ItemTitle  string         `json:"itemTitle"`
	FromColumn types.ColumnID `json:"fromColumn"`
	ToColumn   types.ColumnID `json:"toColumn"`
	FromIndex  int            `json:"fromIndex"`
	ToIndex    int            `json:"toIndex"`
	Kind       string         `json:"kind"` // "reorder" or "transfer"
	MovedAt    time.Time      `json:"movedAt"`
}
