package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/types"
)

// DefaultHistoryLimit caps RecentMoves when the caller passes a non-positive limit
const DefaultHistoryLimit = 20

// MoveRepo handles the move history log
type MoveRepo struct {
	db *sql.DB
}

// RecordMove appends a move to the history.
func (r *MoveRepo) RecordMove(ctx context.Context, move models.MoveRecord) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO move_history
				(item_id, item_title, from_column, to_column, from_index, to_index, kind, moved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			string(move.ItemID), move.ItemTitle,
			string(move.FromColumn), string(move.ToColumn),
			move.FromIndex, move.ToIndex, move.Kind, move.MovedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to record move of %s: %w", move.ItemID, err)
		}
		return nil
	})
}

// RecentMoves returns up to limit moves, newest first.
func (r *MoveRepo) RecentMoves(ctx context.Context, limit int) ([]models.MoveRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_id, item_title, from_column, to_column, from_index, to_index, kind, moved_at
		FROM move_history
		ORDER BY moved_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query move history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	moves := make([]models.MoveRecord, 0)
	for rows.Next() {
		var (
			m              models.MoveRecord
			itemID         string
			fromCol, toCol string
		)
		if err := rows.Scan(&m.ID, &itemID, &m.ItemTitle, &fromCol, &toCol,
			&m.FromIndex, &m.ToIndex, &m.Kind, &m.MovedAt); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.ItemID = types.ItemID(itemID)
		m.FromColumn = types.ColumnID(fromCol)
		m.ToColumn = types.ColumnID(toCol)
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// ClearMoves deletes the whole history.
func (r *MoveRepo) ClearMoves(ctx context.Context) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM move_history`); err != nil {
			return fmt.Errorf("failed to clear move history: %w", err)
		}
		return nil
	})
}
