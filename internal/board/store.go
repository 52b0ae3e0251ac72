// Package board holds the in-memory kanban board and its move operations.
package board

import (
	"fmt"

	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/types"
)

// Store is the single source of truth for one board session.
// Column order is fixed at construction; only item membership and order change.
// A Store is not safe for concurrent use.
type Store struct {
	columns []*models.Column
}

// New validates the board and takes a private copy of it
func New(columns []*models.Column) (*Store, error) {
	if err := Validate(columns); err != nil {
		return nil, err
	}
	return &Store{columns: models.CloneColumns(columns)}, nil
}

// Validate checks the partition invariant: column ids are unique and every
// item id appears exactly once across all columns.
func Validate(columns []*models.Column) error {
	columnIDs := make(map[types.ColumnID]struct{}, len(columns))
	itemIDs := make(map[types.ItemID]types.ColumnID)

	for _, col := range columns {
		if col == nil {
			return ErrNilColumn
		}
		if col.ID == "" {
			return ErrEmptyColumnID
		}
		if _, dup := columnIDs[col.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, col.ID)
		}
		columnIDs[col.ID] = struct{}{}

		for _, item := range col.Items {
			if item == nil {
				return fmt.Errorf("%w in column %s", ErrNilItem, col.ID)
			}
			if item.ID == "" {
				return fmt.Errorf("%w in column %s", ErrEmptyItemID, col.ID)
			}
			if owner, dup := itemIDs[item.ID]; dup {
				return fmt.Errorf("%w: %s (in %s and %s)", ErrDuplicateItem, item.ID, owner, col.ID)
			}
			itemIDs[item.ID] = col.ID
		}
	}
	return nil
}

// ============================================================================
// Queries
// ============================================================================

// Columns returns a deep copy of the board, suitable for serialization
func (s *Store) Columns() []*models.Column {
	return models.CloneColumns(s.columns)
}

// Len returns the number of columns
func (s *Store) Len() int {
	return len(s.columns)
}

// TotalItems returns the number of items across all columns
func (s *Store) TotalItems() int {
	total := 0
	for _, col := range s.columns {
		total += len(col.Items)
	}
	return total
}

// Column returns the column with the given id.
// The returned column is owned by the store and must not be modified.
func (s *Store) Column(columnID types.ColumnID) (*models.Column, bool) {
	for _, col := range s.columns {
		if col.ID == columnID {
			return col, true
		}
	}
	return nil, false
}

// LocateColumn returns the column that currently holds itemID.
// The returned column is owned by the store and must not be modified.
func (s *Store) LocateColumn(itemID types.ItemID) (*models.Column, bool) {
	for _, col := range s.columns {
		if col.IndexOf(itemID) >= 0 {
			return col, true
		}
	}
	return nil, false
}

// Item returns the item with the given id wherever it lives on the board
func (s *Store) Item(itemID types.ItemID) (*models.Item, bool) {
	col, ok := s.LocateColumn(itemID)
	if !ok {
		return nil, false
	}
	return col.Items[col.IndexOf(itemID)], true
}

// IndexOf returns the position of itemID within columnID, or -1
func (s *Store) IndexOf(columnID types.ColumnID, itemID types.ItemID) int {
	col, ok := s.Column(columnID)
	if !ok {
		return -1
	}
	return col.IndexOf(itemID)
}

// ============================================================================
// Mutations
// ============================================================================

// Reorder moves itemID to the position currently held by targetItemID within
// the same column, shifting the items in between. It reports whether the
// board changed; unknown ids and equal positions leave the board untouched.
func (s *Store) Reorder(columnID types.ColumnID, itemID, targetItemID types.ItemID) bool {
	col, ok := s.Column(columnID)
	if !ok {
		return false
	}

	from := col.IndexOf(itemID)
	to := col.IndexOf(targetItemID)
	if from < 0 || to < 0 || from == to {
		return false
	}

	col.Items = moveToIndex(col.Items, from, to)
	return true
}

// Transfer moves itemID from sourceID to destID. When beforeItemID names an
// item in the destination the moved item takes its index; otherwise (empty,
// unknown, or the destination column's own id) the item is appended.
// It reports whether the board changed.
func (s *Store) Transfer(sourceID, destID types.ColumnID, itemID, beforeItemID types.ItemID) bool {
	if sourceID == destID {
		return false
	}

	source, ok := s.Column(sourceID)
	if !ok {
		return false
	}
	dest, ok := s.Column(destID)
	if !ok {
		return false
	}

	from := source.IndexOf(itemID)
	if from < 0 {
		return false
	}
	item := source.Items[from]

	source.Items = removeAt(source.Items, from)

	at := -1
	if beforeItemID != "" {
		at = dest.IndexOf(beforeItemID)
	}
	if at < 0 {
		dest.Items = append(dest.Items, item)
	} else {
		dest.Items = insertAt(dest.Items, at, item)
	}
	return true
}

// ============================================================================
// Slice helpers
// ============================================================================

// moveToIndex removes the element at from and reinserts it at to
func moveToIndex(items []*models.Item, from, to int) []*models.Item {
	item := items[from]
	items = removeAt(items, from)
	return insertAt(items, to, item)
}

// removeAt returns a new slice without the element at i, preserving order
func removeAt(items []*models.Item, i int) []*models.Item {
	out := make([]*models.Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// insertAt returns a new slice with item placed at index i
func insertAt(items []*models.Item, i int, item *models.Item) []*models.Item {
	out := make([]*models.Item, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	return append(out, items[i:]...)
}
