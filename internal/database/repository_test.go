package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/persistence"
	"github.com/thenoetrevino/mission/internal/types"
)

// ============================================================================
// KV STORE
// ============================================================================

func TestKV_MissingKey(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetValue(context.Background(), "kanban-state")

	assert.True(t, errors.Is(err, persistence.ErrNotFound))
}

func TestKV_PutIsUpsert(t *testing.T) {
	ctx := context.Background()
	repo := setupTestDB(t)

	require.NoError(t, repo.PutValue(ctx, "k", "one"))
	require.NoError(t, repo.PutValue(ctx, "k", "two"))

	got, err := repo.GetValue(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}

func TestKV_Delete(t *testing.T) {
	ctx := context.Background()
	repo := setupTestDB(t)
	require.NoError(t, repo.PutValue(ctx, "k", "v"))

	require.NoError(t, repo.DeleteValue(ctx, "k"))
	require.NoError(t, repo.DeleteValue(ctx, "k"), "deleting twice is fine")

	_, err := repo.GetValue(ctx, "k")
	assert.True(t, errors.Is(err, persistence.ErrNotFound))
}

func TestKV_BacksJSONAdapter(t *testing.T) {
	ctx := context.Background()
	adapter := persistence.NewJSONAdapter(setupTestDB(t))
	board := []*models.Column{{
		ID:    "backlog",
		Title: "Backlog",
		Items: []*models.Item{{ID: "t1", Title: "one", Category: models.CategoryBug, Priority: models.PriorityLow, Labels: []string{}}},
	}}

	require.NoError(t, adapter.Save(ctx, board))
	loaded, err := adapter.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, board, loaded)
}

// ============================================================================
// MOVE HISTORY
// ============================================================================

func move(itemID string, at time.Time) models.MoveRecord {
	return models.MoveRecord{
		ItemID:     types.ItemID("t" + itemID),
		ItemTitle:  "Item " + itemID,
		FromColumn: "backlog",
		ToColumn:   "code-review",
		FromIndex:  0,
		ToIndex:    1,
		Kind:       "transfer",
		MovedAt:    at,
	}
}

func TestMoves_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := setupTestDB(t)
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.RecordMove(ctx, move("1", base)))
	require.NoError(t, repo.RecordMove(ctx, move("2", base.Add(time.Minute))))
	require.NoError(t, repo.RecordMove(ctx, move("3", base.Add(2*time.Minute))))

	moves, err := repo.RecentMoves(ctx, 2)
	require.NoError(t, err)

	require.Len(t, moves, 2)
	assert.Equal(t, "Item 3", moves[0].ItemTitle)
	assert.Equal(t, "Item 2", moves[1].ItemTitle)
	assert.True(t, moves[0].MovedAt.Equal(base.Add(2*time.Minute)))
	assert.NotZero(t, moves[0].ID)
}

func TestMoves_RoundTripFields(t *testing.T) {
	ctx := context.Background()
	repo := setupTestDB(t)
	want := move("7", time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC))
	want.Kind = "reorder"
	want.FromIndex, want.ToIndex = 3, 1

	require.NoError(t, repo.RecordMove(ctx, want))
	moves, err := repo.RecentMoves(ctx, 0)
	require.NoError(t, err)

	require.Len(t, moves, 1)
	got := moves[0]
	assert.Equal(t, want.ItemID, got.ItemID)
	assert.Equal(t, want.FromColumn, got.FromColumn)
	assert.Equal(t, want.ToColumn, got.ToColumn)
	assert.Equal(t, 3, got.FromIndex)
	assert.Equal(t, 1, got.ToIndex)
	assert.Equal(t, "reorder", got.Kind)
}

func TestMoves_RejectsUnknownKind(t *testing.T) {
	repo := setupTestDB(t)
	bad := move("1", time.Now())
	bad.Kind = "teleport"

	assert.Error(t, repo.RecordMove(context.Background(), bad))
}

func TestMoves_Clear(t *testing.T) {
	ctx := context.Background()
	repo := setupTestDB(t)
	require.NoError(t, repo.RecordMove(ctx, move("1", time.Now())))

	require.NoError(t, repo.ClearMoves(ctx))

	moves, err := repo.RecentMoves(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

// ============================================================================
// FILE DATABASE
// ============================================================================

func TestInitDB_PersistsAcrossConnections(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewRepository(db).PutValue(ctx, "k", "v"))
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	got, err := NewRepository(db).GetValue(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
