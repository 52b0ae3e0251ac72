package models

import (
	"time"

	"github.com/thenoetrevino/mission/internal/types"
)

// TriggerType describes what starts a workflow
type TriggerType string

const (
	TriggerColumnMove TriggerType = "column-move"
	TriggerLabelAdd   TriggerType = "label-add"
	TriggerPRCreated  TriggerType = "pr-created"
	TriggerSchedule   TriggerType = "schedule"
)

// ActionType describes a single automated step of a workflow
type ActionType string

const (
	ActionRunChecks   ActionType = "run-checks"
	ActionTruthReview ActionType = "truth-review"
	ActionNotify      ActionType = "notify"
	ActionDeploy      ActionType = "deploy"
	ActionMerge       ActionType = "merge"
)

// Trigger is the condition that starts a workflow (e.g. "to:code-review")
type Trigger struct {
	Type      TriggerType `json:"type" yaml:"type"`
	Condition string      `json:"condition" yaml:"condition"`
}

// Action is one automated step with free-form configuration
type Action struct {
	Type   ActionType     `json:"type" yaml:"type"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// Workflow is a read-only descriptor of the automation attached to a column
type Workflow struct {
	ID          types.WorkflowID `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Trigger     Trigger          `json:"trigger"`
	Actions     []Action         `json:"actions"`
	Enabled     bool             `json:"enabled"`
	LastRun     *time.Time       `json:"lastRun,omitempty"`
}

// TargetColumn returns the column a column-move trigger fires on, or ""
func (w *Workflow) TargetColumn() types.ColumnID {
	if w.Trigger.Type != TriggerColumnMove {
		return ""
	}
	const prefix = "to:"
	if len(w.Trigger.Condition) > len(prefix) && w.Trigger.Condition[:len(prefix)] == prefix {
		return types.ColumnID(w.Trigger.Condition[len(prefix):])
	}
	return ""
}
