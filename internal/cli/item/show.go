// Package item implements the "mission item" commands
package item

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/mission/internal/cli"
	"github.com/thenoetrevino/mission/internal/cli/handler"
	"github.com/thenoetrevino/mission/internal/cli/styles"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/tui/components"
	"github.com/thenoetrevino/mission/internal/types"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Inspect items",
	}

	cmd.AddCommand(ShowCmd())

	return cmd
}

type itemColumn struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type itemView struct {
	*models.Item
	Column   itemColumn `json:"column"`
	Position int        `json:"position"`
	Overdue  bool       `json:"overdue"`
}

// GetID returns the item id for quiet output
func (v itemView) GetID() string { return v.Item.ID.String() }

// ShowCmd returns the item show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show item details",
		Long:  "Display all details of an item including its column, labels and rendered description.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Item ID (can also be provided as positional argument)")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	parser := handler.NewFlagParser(cmd)
	formatter := parser.Formatter()

	itemID, err := parser.ParseID(args, 0, "id")
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_ITEM_ID", "item id is required",
			"Usage: mission item show <item-id> or mission item show --id=<item-id>")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.Release(cliInstance)

	store := cliInstance.Session.Store()
	col, ok := store.LocateColumn(types.ItemID(itemID))
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "ITEM_NOT_FOUND",
			fmt.Sprintf("item %s not found", itemID),
			"List item ids with: mission board show --quiet")
	}
	item, _ := store.Item(types.ItemID(itemID))

	now := cliInstance.Now()
	view := itemView{
		Item:     item.Clone(),
		Column:   itemColumn{ID: col.ID.String(), Title: col.Title},
		Position: col.IndexOf(item.ID),
		Overdue:  item.IsOverdue(now),
	}

	return formatter.Success(view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, renderItem(view, col, now))
		return err
	})
}

func renderItem(v itemView, col *models.Column, now time.Time) string {
	item := v.Item

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render(item.Title) + "\n")
	content.WriteString(styles.SubtitleStyle.Render(item.ID.String()) + "\n\n")

	content.WriteString(styles.RenderField("Column", fmt.Sprintf("%s (position %d)", col.Title, v.Position+1)) + "\n")
	content.WriteString(styles.RenderField("Type", item.Category.Icon()+" "+item.Category.Label()) + "\n")
	content.WriteString(styles.LabelStyle.Render("Priority:") + " " +
		styles.BoldColoredText(string(item.Priority), item.Priority.Color()) + "\n")
	if item.Project != "" {
		content.WriteString(styles.RenderField("Project", item.Project) + "\n")
	}
	if item.Assignee != "" {
		content.WriteString(styles.RenderField("Assignee", item.Assignee) + "\n")
	}
	content.WriteString(styles.RenderField("Created", humanize.RelTime(item.CreatedAt, now, "ago", "from now")) + "\n")
	if item.DueDate != nil {
		due := item.DueDate.Format("2006-01-02")
		if v.Overdue {
			due += " " + styles.OverdueStyle.Render("OVERDUE")
		}
		content.WriteString(styles.RenderField("Due", due) + "\n")
	}
	if len(item.Labels) > 0 {
		content.WriteString(styles.SectionStyle.Render("Labels") + "\n")
		content.WriteString(styles.RenderLabelChips(item.Labels) + "\n")
	}
	if col.HasWorkflow() {
		content.WriteString(styles.SectionStyle.Render("Workflow") + "\n")
		content.WriteString(styles.SubtitleStyle.Render("⚡ "+col.WorkflowDescription) + "\n")
	}

	content.WriteString(styles.SectionStyle.Render("Description") + "\n")
	content.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: item.Description,
		Width:       styles.CardWidth - 8,
	}))

	return styles.RenderCard(content.String())
}
