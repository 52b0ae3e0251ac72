// Package seed provides the default board and workflow catalog.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/thenoetrevino/mission/internal/board"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultDocument []byte

type document struct {
	Columns   []columnDoc   `yaml:"columns"`
	Workflows []workflowDoc `yaml:"workflows"`
}

type columnDoc struct {
	ID                  string    `yaml:"id"`
	Title               string    `yaml:"title"`
	Color               string    `yaml:"color"`
	WorkflowID          string    `yaml:"workflowId"`
	WorkflowDescription string    `yaml:"workflowDescription"`
	Items               []itemDoc `yaml:"items"`
}

type itemDoc struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Type        string        `yaml:"type"`
	Priority    string        `yaml:"priority"`
	Project     string        `yaml:"project"`
	Assignee    string        `yaml:"assignee"`
	Labels      []string      `yaml:"labels"`
	Age         time.Duration `yaml:"age"`
	DueIn       time.Duration `yaml:"dueIn"`
}

type workflowDoc struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Trigger     models.Trigger  `yaml:"trigger"`
	Actions     []models.Action `yaml:"actions"`
	Enabled     bool            `yaml:"enabled"`
	LastRun     *time.Duration  `yaml:"lastRun"`
}

// Catalog is a parsed seed document
type Catalog struct {
	doc document
}

// Default returns the embedded seed catalog
func Default() *Catalog {
	c, err := Parse(defaultDocument)
	if err != nil {
		// the embedded document is covered by tests
		panic(fmt.Sprintf("invalid embedded seed: %v", err))
	}
	return c
}

// Parse decodes and validates a seed document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	c := &Catalog{doc: doc}
	if _, err := c.build(time.Now()); err != nil {
		return nil, err
	}
	return c, nil
}

// Columns returns a fresh copy of the seed board with timestamps resolved against now
func (c *Catalog) Columns(now time.Time) []*models.Column {
	// validated in Parse
	columns, _ := c.build(now)
	return columns
}

// Workflows returns the workflow catalog with LastRun resolved against now
func (c *Catalog) Workflows(now time.Time) []models.Workflow {
	workflows := make([]models.Workflow, 0, len(c.doc.Workflows))
	for _, wd := range c.doc.Workflows {
		wf := models.Workflow{
			ID:          types.WorkflowID(wd.ID),
			Name:        wd.Name,
			Description: wd.Description,
			Trigger:     wd.Trigger,
			Actions:     append([]models.Action(nil), wd.Actions...),
			Enabled:     wd.Enabled,
		}
		if wd.LastRun != nil {
			t := now.Add(-*wd.LastRun)
			wf.LastRun = &t
		}
		workflows = append(workflows, wf)
	}
	return workflows
}

func (c *Catalog) build(now time.Time) ([]*models.Column, error) {
	columns := make([]*models.Column, 0, len(c.doc.Columns))
	for _, cd := range c.doc.Columns {
		col := &models.Column{
			ID:                  types.ColumnID(cd.ID),
			Title:               cd.Title,
			Color:               cd.Color,
			WorkflowID:          types.WorkflowID(cd.WorkflowID),
			WorkflowDescription: cd.WorkflowDescription,
			Items:               make([]*models.Item, 0, len(cd.Items)),
		}
		for _, id := range cd.Items {
			item, err := id.toItem(now)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", cd.ID, err)
			}
			col.Items = append(col.Items, item)
		}
		columns = append(columns, col)
	}

	if err := board.Validate(columns); err != nil {
		return nil, fmt.Errorf("invalid seed board: %w", err)
	}
	return columns, nil
}

func (d itemDoc) toItem(now time.Time) (*models.Item, error) {
	category, err := models.ParseCategory(d.Type)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", d.ID, err)
	}
	priority, err := models.ParsePriority(d.Priority)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", d.ID, err)
	}

	item := &models.Item{
		ID:          types.ItemID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Category:    category,
		Priority:    priority,
		Project:     d.Project,
		Assignee:    d.Assignee,
		Labels:      append([]string{}, d.Labels...),
		CreatedAt:   now.Add(-d.Age).UTC(),
	}
	if d.DueIn != 0 {
		due := now.Add(d.DueIn).UTC()
		item.DueDate = &due
	}
	return item, nil
}
