// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/mission/internal/models"
)

// DataStore defines the unified interface for all data operations needed by the session and CLI.
type DataStore interface {
	// Key/value documents
	GetValue(ctx context.Context, key string) (string, error)
	PutValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error

	// Move history
	RecordMove(ctx context.Context, move models.MoveRecord) error
	RecentMoves(ctx context.Context, limit int) ([]models.MoveRecord, error)
	ClearMoves(ctx context.Context) error
}
