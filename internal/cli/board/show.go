package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/mission/internal/cli"
	"github.com/thenoetrevino/mission/internal/cli/handler"
	"github.com/thenoetrevino/mission/internal/cli/styles"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/tui/components"
)

type boardView struct {
	Columns    []*models.Column `json:"columns"`
	TotalItems int              `json:"totalItems"`
}

// GetIDs lists every item id in board order
func (b boardView) GetIDs() []string {
	var ids []string
	for _, col := range b.Columns {
		for _, item := range col.Items {
			ids = append(ids, item.ID.String())
		}
	}
	return ids
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Long: `Print every column and its items in display order.

Examples:
  mission board show
  mission board show --json
  mission board show --quiet   # one item id per line`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := handler.NewFlagParser(cmd).Formatter()

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.Release(cliInstance)

	view := boardView{
		Columns:    cliInstance.Session.Columns(),
		TotalItems: cliInstance.Session.Store().TotalItems(),
	}
	return formatter.Success(view, func(w io.Writer) error {
		_, err := fmt.Fprint(w, renderBoard(view))
		return err
	})
}

func renderBoard(v boardView) string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(components.BoardSummary(v.TotalItems, len(v.Columns))) + "\n")
	for _, col := range v.Columns {
		b.WriteString("\n")
		header := styles.BoldColoredText("● "+col.Title, components.ColumnColor(col.Color))
		b.WriteString(header + " " + styles.SubtitleStyle.Render(fmt.Sprintf("(%d) %s", len(col.Items), col.ID)) + "\n")
		if col.HasWorkflow() {
			b.WriteString("  " + styles.SubtitleStyle.Render("⚡ "+col.WorkflowDescription) + "\n")
		}
		if len(col.Items) == 0 {
			b.WriteString("  " + styles.SubtitleStyle.Render("No items") + "\n")
			continue
		}
		for _, item := range col.Items {
			meta := fmt.Sprintf("%s %s · %s", item.Category.Icon(), item.Category.Label(), item.Priority)
			b.WriteString("  " + styles.RenderItemReference(item) + "  " + styles.SubtitleStyle.Render(meta) + "\n")
		}
	}
	return b.String()
}
