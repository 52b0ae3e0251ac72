package board

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/mission/internal/cli"
	clitest "github.com/thenoetrevino/mission/internal/testutil/cli"
)

func itemIDs(c *cli.CLI, columnID string) []string {
	for _, col := range c.Session.Columns() {
		if col.ID.String() != columnID {
			continue
		}
		ids := make([]string, len(col.Items))
		for i, item := range col.Items {
			ids[i] = item.ID.String()
		}
		return ids
	}
	return nil
}

func TestShow(t *testing.T) {
	ctx, _ := clitest.SetupCLITest(t)

	t.Run("human output lists every column", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"show"})
		require.NoError(t, res.Err)
		for _, title := range []string{"Backlog", "In Progress", "Code Review", "Truth Review", "Ready to Deploy", "Deployed"} {
			assert.Contains(t, res.Stdout, title)
		}
		assert.Contains(t, res.Stdout, "task-1 - Add email capture gate to quiz")
		assert.Contains(t, res.Stdout, "No items")
		assert.Contains(t, res.Stdout, "⚡")
		assert.Contains(t, res.Stdout, "6 items across 6 columns")
	})

	t.Run("json output", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"show", "--json"})
		require.NoError(t, res.Err)

		result := clitest.ParseJSON(t, res.Stdout)
		assert.Equal(t, true, result["success"])
		columns := result["data"].(map[string]any)["columns"].([]any)
		require.Len(t, columns, 6)
		assert.Equal(t, float64(6), result["data"].(map[string]any)["totalItems"])
		backlog := columns[0].(map[string]any)
		assert.Equal(t, "backlog", backlog["id"])
		assert.Len(t, backlog["items"], 2)
	})

	t.Run("quiet output prints item ids in board order", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"show", "--quiet"})
		require.NoError(t, res.Err)
		assert.Equal(t, "task-1\ntask-2\ntask-3\npr-dat-15\npr-dat-16\ntask-4\n", res.Stdout)
	})
}

func TestMove_TransferToColumn(t *testing.T) {
	ctx, c := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-1", "code-review"})
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stdout, "Moved task-1 from backlog to code-review (position 3)")
	assert.Contains(t, res.Stdout, "Workflow Triggered")
	assert.Contains(t, res.Stdout, "Auto Code Review")
	assert.Equal(t, []string{"task-2"}, itemIDs(c, "backlog"))
	assert.Equal(t, []string{"pr-dat-15", "pr-dat-16", "task-1"}, itemIDs(c, "code-review"))

	moves, err := c.Repo.RecentMoves(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "transfer", moves[0].Kind)
	assert.Equal(t, "code-review", moves[0].ToColumn.String())
}

func TestMove_TransferBeforeItem(t *testing.T) {
	ctx, c := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-2", "pr-dat-16", "--json"})
	require.NoError(t, res.Err)

	result := clitest.ParseJSON(t, res.Stdout)
	data := result["data"].(map[string]any)
	assert.Equal(t, "transferred", data["outcome"])
	move := data["move"].(map[string]any)
	assert.Equal(t, "transfer", move["kind"])
	assert.Equal(t, float64(1), move["toIndex"])
	notification := data["notification"].(map[string]any)
	assert.Equal(t, "code-review", notification["columnId"])
	assert.Equal(t, "wf-1", notification["workflowId"])

	assert.Equal(t, []string{"pr-dat-15", "task-2", "pr-dat-16"}, itemIDs(c, "code-review"))
}

func TestMove_Reorder(t *testing.T) {
	ctx, c := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-2", "task-1"})
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stdout, "Reordered task-2 in backlog: 2 → 1")
	assert.NotContains(t, res.Stdout, "Workflow Triggered")
	assert.Equal(t, []string{"task-2", "task-1"}, itemIDs(c, "backlog"))
}

func TestMove_CancelledWithoutTarget(t *testing.T) {
	ctx, c := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-1"})
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stdout, "Drag cancelled, task-1 stays in backlog")
	assert.Equal(t, []string{"task-1", "task-2"}, itemIDs(c, "backlog"))

	moves, err := c.Repo.RecentMoves(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestMove_TargetFlag(t *testing.T) {
	ctx, c := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-3", "--to", "deployed", "--quiet"})
	require.NoError(t, res.Err)

	assert.Equal(t, "task-3\n", res.Stdout)
	assert.Equal(t, []string{"task-4", "task-3"}, itemIDs(c, "deployed"))
}

func TestMove_Unchanged(t *testing.T) {
	ctx, _ := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-1", "task-1"})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "nothing changed")
}

func TestMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown item",
			args:     []string{"move", "nope", "backlog"},
			wantCode: cli.ExitNotFound,
			wantErr:  "item nope not found",
		},
		{
			name:     "unknown drop target",
			args:     []string{"move", "task-1", "nowhere"},
			wantCode: cli.ExitNotFound,
			wantErr:  "drop target nowhere is neither a column nor an item",
		},
		{
			name:     "blank item id",
			args:     []string{"move", " "},
			wantCode: cli.ExitUsage,
			wantErr:  "item id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, c := clitest.SetupCLITest(t)

			res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), tt.args)
			require.Error(t, res.Err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(res.Err))
			assert.True(t, cli.Reported(res.Err))
			assert.Contains(t, res.Stderr, tt.wantErr)
			assert.Equal(t, []string{"task-1", "task-2"}, itemIDs(c, "backlog"))
		})
	}
}

func TestMove_ErrorJSON(t *testing.T) {
	ctx, _ := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "nope", "backlog", "--json"})
	require.Error(t, res.Err)

	result := clitest.ParseJSON(t, res.Stdout)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "ITEM_NOT_FOUND", result["error"].(map[string]any)["code"])
}

func TestMove_TooManyArgs(t *testing.T) {
	ctx, _ := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "a", "b", "c"})
	require.Error(t, res.Err)
	assert.False(t, cli.Reported(res.Err))
}

func TestReset(t *testing.T) {
	ctx, c := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-1", "deployed"})
	require.NoError(t, res.Err)

	res = clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"reset", "--yes"})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Board reset: 6 columns, 6 items")
	assert.Equal(t, []string{"task-1", "task-2"}, itemIDs(c, "backlog"))

	moves, err := c.Repo.RecentMoves(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestReset_KeepHistoryJSON(t *testing.T) {
	ctx, c := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-1", "deployed"})
	require.NoError(t, res.Err)

	res = clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"reset", "--keep-history", "--json"})
	require.NoError(t, res.Err)

	data := clitest.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.Equal(t, float64(6), data["items"])
	assert.Equal(t, false, data["historyCleared"])

	moves, err := c.Repo.RecentMoves(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, moves, 1)
}

func TestReset_Confirmation(t *testing.T) {
	original := confirmReset
	t.Cleanup(func() { confirmReset = original })

	t.Run("declined", func(t *testing.T) {
		ctx, c := clitest.SetupCLITest(t)
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-1", "deployed"})
		require.NoError(t, res.Err)

		asked := false
		confirmReset = func(title, description string) (bool, error) {
			asked = true
			return false, nil
		}

		res = clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"reset"})
		require.NoError(t, res.Err)
		assert.True(t, asked)
		assert.Contains(t, res.Stdout, "Reset cancelled")
		assert.Equal(t, []string{"task-2"}, itemIDs(c, "backlog"))
	})

	t.Run("prompt failure", func(t *testing.T) {
		ctx, _ := clitest.SetupCLITest(t)
		confirmReset = func(string, string) (bool, error) {
			return false, errors.New("no tty")
		}

		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"reset"})
		require.Error(t, res.Err)
		assert.Equal(t, cli.ExitError, cli.ExitCode(res.Err))
		assert.Contains(t, res.Stderr, "--yes")
	})

	t.Run("accepted", func(t *testing.T) {
		ctx, c := clitest.SetupCLITest(t)
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"move", "task-1", "deployed"})
		require.NoError(t, res.Err)

		confirmReset = func(string, string) (bool, error) { return true, nil }

		res = clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"reset"})
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"task-1", "task-2"}, itemIDs(c, "backlog"))
	})
}

func TestHistory(t *testing.T) {
	ctx, _ := clitest.SetupCLITest(t)

	t.Run("empty", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"history"})
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "No moves yet")
	})

	for _, args := range [][]string{
		{"move", "task-1", "code-review"},
		{"move", "task-2", "task-3"},
		{"move", "pr-dat-16", "pr-dat-15"},
	} {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), args)
		require.NoError(t, res.Err)
	}

	t.Run("human output newest first", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"history"})
		require.NoError(t, res.Err)

		lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "pr-dat-16")
		assert.Contains(t, lines[0], "(reorder)")
		assert.Contains(t, lines[1], "backlog → in-progress")
		assert.Contains(t, lines[2], "task-1")
		assert.Contains(t, lines[2], "now")
	})

	t.Run("limit and quiet", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"history", "--limit", "2", "--quiet"})
		require.NoError(t, res.Err)
		assert.Equal(t, "pr-dat-16\ntask-2\n", res.Stdout)
	})

	t.Run("json", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"history", "--json"})
		require.NoError(t, res.Err)

		moves := clitest.ParseJSON(t, res.Stdout)["data"].(map[string]any)["moves"].([]any)
		require.Len(t, moves, 3)
		first := moves[0].(map[string]any)
		assert.Equal(t, "pr-dat-16", first["itemId"])
		assert.Equal(t, "reorder", first["kind"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, ctx, BoardCmd(), []string{"history", "--limit", "0"})
		require.Error(t, res.Err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(res.Err))
	})
}
