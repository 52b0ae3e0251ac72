package board

import "errors"

// Board validation errors, returned only when constructing a Store
var (
	ErrNilColumn       = errors.New("board contains a nil column")
	ErrNilItem         = errors.New("board contains a nil item")
	ErrEmptyColumnID   = errors.New("column id cannot be empty")
	ErrEmptyItemID     = errors.New("item id cannot be empty")
	ErrDuplicateColumn = errors.New("duplicate column id")
	ErrDuplicateItem   = errors.New("item appears more than once on the board")
)
