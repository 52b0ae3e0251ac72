package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/mission/internal/cli/board"
	"github.com/thenoetrevino/mission/internal/cli/item"
	"github.com/thenoetrevino/mission/internal/cli/workflow"
	"github.com/thenoetrevino/mission/internal/config"
	"github.com/thenoetrevino/mission/internal/launcher"
	"github.com/thenoetrevino/mission/internal/logging"
)

// logCloser is the log file opened by the root pre-run hook
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "mission",
	Short: "Mission Control - A terminal-based kanban board",
	Long: `Mission Control is a terminal-based kanban board. Run it without arguments
to open the board, then pick items up and drop them into other columns.
Columns with a workflow raise a notification when an item enters them.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
	RunE:              runTUI,
}

func init() {
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(workflow.WorkflowCmd())
}

// Execute runs the command tree under ctx
func Execute(ctx context.Context) error {
	defer func() {
		if logCloser != nil {
			if err := logCloser.Close(); err != nil {
				slog.Error("failed to close log file", "error", err)
			}
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func initLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	closer, err := logging.Init(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return launcher.Launch(cmd.Context(), cfg)
}
