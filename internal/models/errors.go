package models

import "errors"

// Domain-specific validation errors
var (
	// ErrUnknownCategory indicates a category string outside the fixed set
	ErrUnknownCategory = errors.New("unknown item category")

	// ErrUnknownPriority indicates a priority string outside the fixed set
	ErrUnknownPriority = errors.New("unknown item priority")
)
