// Package workflow implements the "mission workflow" commands
package workflow

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/mission/internal/cli"
	"github.com/thenoetrevino/mission/internal/cli/handler"
	"github.com/thenoetrevino/mission/internal/cli/styles"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/types"
)

// descriptionWidth is where workflow descriptions wrap in human output
const descriptionWidth = 60

// WorkflowCmd returns the workflow parent command
func WorkflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Inspect workflow automations",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}

type workflowList struct {
	Workflows []models.Workflow `json:"workflows"`
}

// GetIDs lists the workflow ids
func (l workflowList) GetIDs() []string {
	ids := make([]string, len(l.Workflows))
	for i, wf := range l.Workflows {
		ids[i] = wf.ID.String()
	}
	return ids
}

// ListCmd returns the workflow list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflows",
		Long: `List the workflow catalog. Workflows are descriptive only; moving an item
into a column with a workflow raises a notification but runs nothing.

Examples:
  mission workflow list
  mission workflow list --column=code-review
  mission workflow list --json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only workflows triggered by moves into this column")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := handler.NewFlagParser(cmd).Formatter()
	column, _ := cmd.Flags().GetString("column")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.Release(cliInstance)

	if column != "" {
		if _, ok := cliInstance.Session.Store().Column(types.ColumnID(column)); !ok {
			return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND",
				fmt.Sprintf("column %s not found", column),
				"List column ids with: mission board show")
		}
	}

	workflows := []models.Workflow{}
	for _, wf := range cliInstance.Session.Workflows() {
		if column != "" && wf.TargetColumn() != types.ColumnID(column) {
			continue
		}
		workflows = append(workflows, wf)
	}

	list := workflowList{Workflows: workflows}
	now := cliInstance.Now()
	return formatter.Success(list, func(w io.Writer) error {
		if len(workflows) == 0 {
			_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No workflows"))
			return err
		}

		var b strings.Builder
		for i, wf := range workflows {
			if i > 0 {
				b.WriteString("\n")
			}
			status := styles.SuccessStyle.Render("enabled")
			if !wf.Enabled {
				status = styles.WarningStyle.Render("disabled")
			}
			fmt.Fprintf(&b, "%s %s %s\n", styles.TitleStyle.Render(wf.Name), styles.SubtitleStyle.Render(wf.ID.String()), status)

			b.WriteString(indent.String(wordwrap.String(wf.Description, descriptionWidth), 2) + "\n")
			b.WriteString("  " + styles.RenderField("Trigger", fmt.Sprintf("%s %s", wf.Trigger.Type, wf.Trigger.Condition)) + "\n")
			b.WriteString("  " + styles.RenderField("Actions", actionList(wf.Actions)) + "\n")
			if wf.LastRun != nil {
				b.WriteString("  " + styles.RenderField("Last run", humanize.RelTime(*wf.LastRun, now, "ago", "from now")) + "\n")
			}
		}
		_, err := fmt.Fprint(w, b.String())
		return err
	})
}

func actionList(actions []models.Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a.Type)
	}
	return strings.Join(names, ", ")
}
