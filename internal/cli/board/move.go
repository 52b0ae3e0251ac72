package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/mission/internal/cli"
	"github.com/thenoetrevino/mission/internal/cli/handler"
	"github.com/thenoetrevino/mission/internal/cli/styles"
	"github.com/thenoetrevino/mission/internal/drag"
	"github.com/thenoetrevino/mission/internal/notify"
	"github.com/thenoetrevino/mission/internal/types"
)

type moveDetail struct {
	Kind      string `json:"kind"`
	From      string `json:"from"`
	To        string `json:"to"`
	FromIndex int    `json:"fromIndex"`
	ToIndex   int    `json:"toIndex"`
}

type workflowNotice struct {
	ColumnID    string `json:"columnId"`
	ColumnTitle string `json:"columnTitle"`
	WorkflowID  string `json:"workflowId,omitempty"`
	Description string `json:"description"`
}

type moveView struct {
	Outcome      string          `json:"outcome"`
	ItemID       string          `json:"itemId"`
	DropTarget   string          `json:"dropTarget,omitempty"`
	Move         *moveDetail     `json:"move,omitempty"`
	Notification *workflowNotice `json:"notification,omitempty"`

	column string
	wf     *drag.Notification
}

// GetID returns the moved item's id for quiet output
func (v moveView) GetID() string { return v.ItemID }

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <item-id> [drop-target-id]",
		Short: "Drag an item onto a column or another item",
		Long: `Perform one drag gesture: pick up <item-id> and drop it on <drop-target-id>.

The drop target is either a column id (the item is appended to that column) or
an item id (the item takes that item's place). Omitting the target cancels the
drag and leaves the board unchanged.

Examples:
  mission board move task-1 code-review
  mission board move task-2 task-1         # reorder within the backlog
  mission board move task-3 --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runMove,
	}

	cmd.Flags().String("to", "", "Drop target id (can also be provided as the second argument)")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	parser := handler.NewFlagParser(cmd)
	formatter := parser.Formatter()

	itemID, err := parser.ParseID(args, 0, "")
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_ITEM_ID", "item id is required",
			"Usage: mission board move <item-id> [drop-target-id]")
	}
	target := ""
	if len(args) > 1 {
		target = args[1]
	} else if to, err := cmd.Flags().GetString("to"); err == nil {
		target = to
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.Release(cliInstance)

	sess := cliInstance.Session
	source, ok := sess.Store().LocateColumn(types.ItemID(itemID))
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "ITEM_NOT_FOUND",
			fmt.Sprintf("item %s not found", itemID),
			"List item ids with: mission board show --quiet")
	}
	sourceID := source.ID

	failures := sess.SaveFailures()
	res := sess.Move(itemID, target)

	if res.Outcome == drag.OutcomeUnresolved {
		return formatter.Fail(cli.ExitNotFound, "DROP_TARGET_NOT_FOUND",
			fmt.Sprintf("drop target %s is neither a column nor an item", target),
			"List column and item ids with: mission board show")
	}
	if sess.SaveFailures() > failures {
		return formatter.Fail(cli.ExitError, "SAVE_FAILED",
			"the move was applied but could not be saved", "Check the log for storage errors")
	}

	view := moveView{
		Outcome:    res.Outcome.String(),
		ItemID:     itemID,
		DropTarget: target,
		column:     sourceID.String(),
		wf:         res.Notification,
	}
	if res.Move != nil {
		view.Move = &moveDetail{
			Kind:      res.Move.Kind.String(),
			From:      res.Move.From.String(),
			To:        res.Move.To.String(),
			FromIndex: res.Move.FromIndex,
			ToIndex:   res.Move.ToIndex,
		}
	}
	if n := res.Notification; n != nil {
		view.Notification = &workflowNotice{
			ColumnID:    n.ColumnID.String(),
			ColumnTitle: n.ColumnTitle,
			WorkflowID:  n.WorkflowID.String(),
			Description: n.Description,
		}
	}

	return formatter.Success(view, func(w io.Writer) error {
		_, err := fmt.Fprint(w, renderMove(view))
		return err
	})
}

func renderMove(v moveView) string {
	var out string
	switch {
	case v.Move != nil && v.Move.Kind == drag.MoveTransfer.String():
		out = fmt.Sprintf("%s Moved %s from %s to %s (position %d)\n",
			styles.SuccessStyle.Render("✓"), v.ItemID, v.Move.From, v.Move.To, v.Move.ToIndex+1)
	case v.Move != nil:
		out = fmt.Sprintf("%s Reordered %s in %s: %d → %d\n",
			styles.SuccessStyle.Render("✓"), v.ItemID, v.Move.From, v.Move.FromIndex+1, v.Move.ToIndex+1)
	case v.Outcome == drag.OutcomeCancelled.String():
		out = fmt.Sprintf("Drag cancelled, %s stays in %s\n", v.ItemID, v.column)
	default:
		out = fmt.Sprintf("%s is already there, nothing changed\n", v.ItemID)
	}

	if v.wf != nil {
		out += "\n" + styles.WarningStyle.Render("⚡ Workflow Triggered") + "\n" + notify.Message(*v.wf) + "\n"
	}
	return out
}
