package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/mission/internal/cli"
	"github.com/thenoetrevino/mission/internal/cli/handler"
	"github.com/thenoetrevino/mission/internal/cli/styles"
)

// confirmReset asks before discarding the board. Replaced in tests.
var confirmReset = styles.Confirm

type resetView struct {
	Columns        int  `json:"columns"`
	Items          int  `json:"items"`
	HistoryCleared bool `json:"historyCleared"`
}

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default board",
		Long: `Replace the saved board with the default columns and items.

The move history is cleared too unless --keep-history is given. You are asked
to confirm unless --yes, --json or --quiet is set.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().Bool("keep-history", false, "Keep the move history")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	parser := handler.NewFlagParser(cmd)
	formatter := parser.Formatter()

	yes, _ := parser.ParseBool("yes")
	keepHistory, _ := parser.ParseBool("keep-history")

	if !yes && !formatter.JSON && !formatter.Quiet {
		ok, err := confirmReset("Reset the board?", "Every column returns to its default items.")
		if err != nil {
			return formatter.Fail(cli.ExitError, "PROMPT_FAILED", err.Error(), "Pass --yes to skip the prompt")
		}
		if !ok {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
			return err
		}
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.Release(cliInstance)

	ctx := cmd.Context()
	if err := cliInstance.Session.Reset(ctx); err != nil {
		return formatter.Fail(cli.ExitError, "RESET_FAILED", err.Error(), "Check the log for storage errors")
	}
	if !keepHistory {
		if err := cliInstance.Repo.ClearMoves(ctx); err != nil {
			return formatter.Fail(cli.ExitError, "HISTORY_CLEAR_FAILED", err.Error(), "")
		}
	}

	store := cliInstance.Session.Store()
	view := resetView{
		Columns:        store.Len(),
		Items:          store.TotalItems(),
		HistoryCleared: !keepHistory,
	}
	return formatter.Success(view, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s Board reset: %d columns, %d items\n",
			styles.SuccessStyle.Render("✓"), view.Columns, view.Items)
		return err
	})
}
