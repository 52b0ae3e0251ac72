package types

// ID types give board identifiers semantic meaning. Board identifiers are
// free-form strings (e.g. "backlog", "task-1", "pr-dat-15") so they survive
// a round trip through the persisted JSON document untouched.

// ColumnID identifies a column on the board
type ColumnID string

// ItemID identifies a work item; unique across the whole board
type ItemID string

// WorkflowID identifies a workflow descriptor attached to a column
type WorkflowID string

// String implements fmt.Stringer
func (id ColumnID) String() string { return string(id) }

// String implements fmt.Stringer
func (id ItemID) String() string { return string(id) }

// String implements fmt.Stringer
func (id WorkflowID) String() string { return string(id) }
