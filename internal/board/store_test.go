package board

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// column builds a column holding items with the given ids
func column(id string, itemIDs ...string) *models.Column {
	col := &models.Column{ID: types.ColumnID(id), Title: id}
	for _, itemID := range itemIDs {
		col.Items = append(col.Items, &models.Item{
			ID:       types.ItemID(itemID),
			Title:    "Item " + itemID,
			Category: models.CategoryTask,
			Priority: models.PriorityMedium,
		})
	}
	return col
}

// itemIDs lists the ids in a column in order
func itemIDs(t *testing.T, s *Store, columnID string) []string {
	t.Helper()
	col, ok := s.Column(types.ColumnID(columnID))
	require.True(t, ok, "column %s should exist", columnID)

	ids := make([]string, 0, len(col.Items))
	for _, item := range col.Items {
		ids = append(ids, string(item.ID))
	}
	return ids
}

// allItemIDs returns the sorted multiset of item ids on the board
func allItemIDs(s *Store) []string {
	var ids []string
	for _, col := range s.Columns() {
		for _, item := range col.Items {
			ids = append(ids, string(item.ID))
		}
	}
	sort.Strings(ids)
	return ids
}

func newStore(t *testing.T, columns ...*models.Column) *Store {
	t.Helper()
	s, err := New(columns)
	require.NoError(t, err)
	return s
}

// ============================================================================
// CONSTRUCTION
// ============================================================================

func TestNew_RejectsMalformedBoards(t *testing.T) {
	tests := []struct {
		name    string
		columns []*models.Column
		wantErr error
	}{
		{"duplicate column", []*models.Column{column("a"), column("a")}, ErrDuplicateColumn},
		{"item in two columns", []*models.Column{column("a", "x"), column("b", "x")}, ErrDuplicateItem},
		{"item twice in one column", []*models.Column{column("a", "x", "x")}, ErrDuplicateItem},
		{"empty column id", []*models.Column{column("")}, ErrEmptyColumnID},
		{"empty item id", []*models.Column{column("a", "")}, ErrEmptyItemID},
		{"nil column", []*models.Column{nil}, ErrNilColumn},
		{"nil item", []*models.Column{{ID: "a", Items: []*models.Item{nil}}}, ErrNilItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.columns)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	input := []*models.Column{column("a", "x", "y")}
	s := newStore(t, input...)

	input[0].Items = nil
	assert.Equal(t, []string{"x", "y"}, itemIDs(t, s, "a"))
}

func TestColumns_ReturnsDeepCopy(t *testing.T) {
	s := newStore(t, column("a", "x"))

	snapshot := s.Columns()
	snapshot[0].Items[0].Title = "mutated"
	snapshot[0].Items = nil

	item, ok := s.Item("x")
	require.True(t, ok)
	assert.Equal(t, "Item x", item.Title)
	assert.Equal(t, 1, s.TotalItems())
}

// ============================================================================
// QUERIES
// ============================================================================

func TestLocateColumn(t *testing.T) {
	s := newStore(t, column("backlog", "t1", "t2"), column("review", "p1"))

	col, ok := s.LocateColumn("p1")
	require.True(t, ok)
	assert.Equal(t, types.ColumnID("review"), col.ID)

	_, ok = s.LocateColumn("missing")
	assert.False(t, ok)

	// Column ids are not item ids
	_, ok = s.LocateColumn("backlog")
	assert.False(t, ok)
}

func TestIndexOf(t *testing.T) {
	s := newStore(t, column("a", "x", "y"))
	assert.Equal(t, 1, s.IndexOf("a", "y"))
	assert.Equal(t, -1, s.IndexOf("a", "z"))
	assert.Equal(t, -1, s.IndexOf("nope", "y"))
}

// ============================================================================
// REORDER
// ============================================================================

func TestReorder_MovesToTargetIndex(t *testing.T) {
	s := newStore(t, column("c", "A", "B", "C", "D"))

	changed := s.Reorder("c", "D", "B")

	assert.True(t, changed)
	assert.Equal(t, []string{"A", "D", "B", "C"}, itemIDs(t, s, "c"))
}

func TestReorder_MovesDownward(t *testing.T) {
	s := newStore(t, column("c", "A", "B", "C", "D"))

	changed := s.Reorder("c", "A", "C")

	assert.True(t, changed)
	assert.Equal(t, []string{"B", "C", "A", "D"}, itemIDs(t, s, "c"))
}

func TestReorder_SelfIsNoOp(t *testing.T) {
	s := newStore(t, column("c", "A", "B", "C"))
	before := s.Columns()

	changed := s.Reorder("c", "B", "B")

	assert.False(t, changed)
	assert.Equal(t, before, s.Columns())
}

func TestReorder_UnknownIDsAreNoOps(t *testing.T) {
	s := newStore(t, column("c", "A", "B"), column("d", "X"))
	before := s.Columns()

	assert.False(t, s.Reorder("c", "A", "missing"))
	assert.False(t, s.Reorder("c", "missing", "A"))
	assert.False(t, s.Reorder("nope", "A", "B"))
	// Target in another column is not a reorder
	assert.False(t, s.Reorder("c", "A", "X"))

	assert.Equal(t, before, s.Columns())
}

// ============================================================================
// TRANSFER
// ============================================================================

func TestTransfer_BeforeItem(t *testing.T) {
	s := newStore(t, column("S", "X", "Y"), column("D", "P", "Q"))

	changed := s.Transfer("S", "D", "X", "Q")

	assert.True(t, changed)
	assert.Equal(t, []string{"Y"}, itemIDs(t, s, "S"))
	assert.Equal(t, []string{"P", "X", "Q"}, itemIDs(t, s, "D"))
}

func TestTransfer_AppendsWhenTargetAbsent(t *testing.T) {
	tests := []struct {
		name   string
		before types.ItemID
	}{
		{"no target", ""},
		{"unknown target", "ghost"},
		{"column as target", "D"},
		{"item from another column", "Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, column("S", "X", "Y"), column("D", "P", "Q"))

			changed := s.Transfer("S", "D", "X", tt.before)

			assert.True(t, changed)
			assert.Equal(t, []string{"Y"}, itemIDs(t, s, "S"))
			assert.Equal(t, []string{"P", "Q", "X"}, itemIDs(t, s, "D"))
		})
	}
}

func TestTransfer_IntoEmptyColumn(t *testing.T) {
	s := newStore(t, column("backlog", "t1", "t2"), column("code-review"))

	changed := s.Transfer("backlog", "code-review", "t1", "")

	assert.True(t, changed)
	assert.Equal(t, []string{"t2"}, itemIDs(t, s, "backlog"))
	assert.Equal(t, []string{"t1"}, itemIDs(t, s, "code-review"))
}

func TestTransfer_InvalidInputsAreNoOps(t *testing.T) {
	s := newStore(t, column("S", "X"), column("D", "P"))
	before := s.Columns()

	assert.False(t, s.Transfer("S", "S", "X", ""), "same column is a reorder, not a transfer")
	assert.False(t, s.Transfer("S", "D", "P", ""), "item not in source")
	assert.False(t, s.Transfer("nope", "D", "X", ""))
	assert.False(t, s.Transfer("S", "nope", "X", ""))

	assert.Equal(t, before, s.Columns())
}

// ============================================================================
// INVARIANTS
// ============================================================================

// TestPartitionInvariant_RandomMoves applies a long random sequence of
// reorders and transfers and checks that no item is lost or duplicated.
func TestPartitionInvariant_RandomMoves(t *testing.T) {
	s := newStore(t,
		column("a", "1", "2", "3"),
		column("b", "4", "5"),
		column("c"),
		column("d", "6", "7", "8", "9"),
	)
	want := allItemIDs(s)
	rng := rand.New(rand.NewSource(42))

	columnIDs := []types.ColumnID{"a", "b", "c", "d", "ghost"}
	itemPool := []types.ItemID{"1", "2", "3", "4", "5", "6", "7", "8", "9", "ghost", ""}

	for i := 0; i < 500; i++ {
		item := itemPool[rng.Intn(len(itemPool))]
		target := itemPool[rng.Intn(len(itemPool))]
		if rng.Intn(2) == 0 {
			s.Reorder(columnIDs[rng.Intn(len(columnIDs))], item, target)
		} else {
			s.Transfer(columnIDs[rng.Intn(len(columnIDs))], columnIDs[rng.Intn(len(columnIDs))], item, target)
		}

		require.Equal(t, want, allItemIDs(s), "multiset changed after step %d", i)
		require.NoError(t, Validate(s.Columns()), "partition broken after step %d", i)
		require.Equal(t, 4, s.Len(), "column count changed after step %d", i)
	}
}
