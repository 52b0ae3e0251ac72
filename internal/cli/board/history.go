package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/mission/internal/cli"
	"github.com/thenoetrevino/mission/internal/cli/handler"
	"github.com/thenoetrevino/mission/internal/cli/styles"
	"github.com/thenoetrevino/mission/internal/database"
	"github.com/thenoetrevino/mission/internal/models"
)

type historyView struct {
	Moves []models.MoveRecord `json:"moves"`
}

// GetIDs lists the moved item ids, newest first
func (h historyView) GetIDs() []string {
	ids := make([]string, len(h.Moves))
	for i, m := range h.Moves {
		ids[i] = m.ItemID.String()
	}
	return ids
}

// HistoryCmd returns the board history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent moves",
		Long:  "List the most recent reorders and transfers, newest first.",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	cmd.Flags().Int("limit", database.DefaultHistoryLimit, "Maximum number of moves to list")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	parser := handler.NewFlagParser(cmd)
	formatter := parser.Formatter()

	limit, err := parser.ParseInt("limit")
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_LIMIT", err.Error(), "Usage: mission board history --limit=20")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.Release(cliInstance)

	moves, err := cliInstance.Repo.RecentMoves(cmd.Context(), limit)
	if err != nil {
		return formatter.Fail(cli.ExitError, "HISTORY_FAILED", err.Error(), "")
	}
	if moves == nil {
		moves = []models.MoveRecord{}
	}

	view := historyView{Moves: moves}
	now := cliInstance.Now()
	return formatter.Success(view, func(w io.Writer) error {
		if len(moves) == 0 {
			_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No moves yet"))
			return err
		}
		var b strings.Builder
		for _, m := range moves {
			var where string
			if m.Kind == "transfer" {
				where = fmt.Sprintf("%s → %s", m.FromColumn, m.ToColumn)
			} else {
				where = fmt.Sprintf("%s %d → %d", m.FromColumn, m.FromIndex+1, m.ToIndex+1)
			}
			fmt.Fprintf(&b, "%-16s %s  %s  %s\n",
				humanize.RelTime(m.MovedAt, now, "ago", "from now"),
				styles.TitleStyle.Render(m.ItemID.String()),
				m.ItemTitle,
				styles.SubtitleStyle.Render(where+" ("+m.Kind+")"))
		}
		_, err := fmt.Fprint(w, b.String())
		return err
	})
}
