// Package persistence moves board state between memory and a string-keyed store.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thenoetrevino/mission/internal/models"
)

// StateKey is the fixed key the board document is stored under
const StateKey = "kanban-state"

// CorruptKey holds the last stored document that could not be loaded
const CorruptKey = StateKey + ".corrupt"

var (
	// ErrNoState indicates nothing has been persisted yet
	ErrNoState = errors.New("no persisted board state")

	// ErrNotFound is returned by a KVStore for a missing key
	ErrNotFound = errors.New("key not found")
)

// Adapter loads and saves whole boards
type Adapter interface {
	// Load returns the persisted board, or ErrNoState when there is none
	Load(ctx context.Context) ([]*models.Column, error)

	// Save replaces the persisted board
	Save(ctx context.Context, columns []*models.Column) error
}

// Preserver is implemented by adapters that can set aside a stored board
// that failed to load, before anything overwrites it
type Preserver interface {
	Preserve(ctx context.Context) error
}

// KVStore is a string-keyed document store
type KVStore interface {
	GetValue(ctx context.Context, key string) (string, error)
	PutValue(ctx context.Context, key, value string) error
}

// JSONAdapter stores the board as a JSON document under a single key
type JSONAdapter struct {
	kv  KVStore
	key string
}

// NewJSONAdapter creates an adapter writing under StateKey
func NewJSONAdapter(kv KVStore) *JSONAdapter {
	return &JSONAdapter{kv: kv, key: StateKey}
}

// Load decodes the stored document
func (a *JSONAdapter) Load(ctx context.Context) ([]*models.Column, error) {
	raw, err := a.kv.GetValue(ctx, a.key)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board state: %w", err)
	}

	var columns []*models.Column
	if err := json.Unmarshal([]byte(raw), &columns); err != nil {
		return nil, fmt.Errorf("failed to decode board state: %w", err)
	}
	if len(columns) == 0 {
		return nil, ErrNoState
	}
	return columns, nil
}

// Save encodes and writes the board
func (a *JSONAdapter) Save(ctx context.Context, columns []*models.Column) error {
	data, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("failed to encode board state: %w", err)
	}
	if err := a.kv.PutValue(ctx, a.key, string(data)); err != nil {
		return fmt.Errorf("failed to write board state: %w", err)
	}
	return nil
}

// Preserve copies the stored document to CorruptKey. Nothing stored is not an error.
func (a *JSONAdapter) Preserve(ctx context.Context) error {
	raw, err := a.kv.GetValue(ctx, a.key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read board state: %w", err)
	}
	if err := a.kv.PutValue(ctx, a.key+".corrupt", raw); err != nil {
		return fmt.Errorf("failed to preserve board state: %w", err)
	}
	return nil
}

// Nop is used when no storage is available; nothing is ever persisted
type Nop struct{}

// Load always reports that there is no state
func (Nop) Load(context.Context) ([]*models.Column, error) {
	return nil, ErrNoState
}

// Save discards the board
func (Nop) Save(context.Context, []*models.Column) error {
	return nil
}

var (
	_ Adapter   = (*JSONAdapter)(nil)
	_ Preserver = (*JSONAdapter)(nil)
	_ Adapter   = Nop{}
)
