// Package board implements the "mission board" commands
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show and rearrange the board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ResetCmd())
	cmd.AddCommand(HistoryCmd())

	return cmd
}
