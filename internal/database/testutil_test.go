package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database with the schema applied
func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}
