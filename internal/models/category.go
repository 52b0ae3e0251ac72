package models

import "fmt"

// ============================================================================
// CATEGORY
// ============================================================================

// Category classifies a work item. The string values are the wire format of the
// persisted board document.
type Category string

const (
	CategoryPullRequest Category = "pr"
	CategoryTask        Category = "task"
	CategoryContent     Category = "content"
	CategoryBug         Category = "bug"
	CategoryFeature     Category = "feature"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryPullRequest,
	CategoryTask,
	CategoryContent,
	CategoryBug,
	CategoryFeature,
}

// ParseCategory converts a wire string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryPullRequest, CategoryTask, CategoryContent, CategoryBug, CategoryFeature:
		return true
	}
	return false
}

// Label returns the human readable name of the category
func (c Category) Label() string {
	switch c {
	case CategoryPullRequest:
		return "Pull Request"
	case CategoryTask:
		return "Task"
	case CategoryContent:
		return "Content"
	case CategoryBug:
		return "Bug"
	case CategoryFeature:
		return "Feature"
	default:
		return string(c)
	}
}

// Icon returns a short glyph used on cards
func (c Category) Icon() string {
	switch c {
	case CategoryPullRequest:
		return "⇄"
	case CategoryTask:
		return "□"
	case CategoryContent:
		return "✎"
	case CategoryBug:
		return "✗"
	case CategoryFeature:
		return "★"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown categories
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
