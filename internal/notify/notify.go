// Package notify holds the transient notifications shown after workflow triggers.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/mission/internal/drag"
)

// DefaultTTL is how long a notification stays visible when no TTL is configured
const DefaultTTL = 6 * time.Second

// Level represents the severity of a notification.
type Level int

const (
	// LevelInfo is used for workflow triggers
	LevelInfo Level = iota
	// LevelWarning is used when the board could not be saved
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is one visible message
type Notification struct {
	ID        string
	Level     Level
	Title     string
	Message   string
	Workflow  *drag.Notification
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the notification should no longer be shown at now
func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// Center manages active notifications. It never touches board state.
type Center struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []Notification
}

// NewCenter creates a Center. A non-positive ttl falls back to DefaultTTL.
func NewCenter(ttl time.Duration, now func() time.Time) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Center{ttl: ttl, now: now, items: []Notification{}}
}

// TTL returns the configured lifetime of a notification
func (c *Center) TTL() time.Duration {
	return c.ttl
}

// Add adds a notification and returns it.
func (c *Center) Add(level Level, title, message string) Notification {
	return c.add(level, title, message, nil)
}

func (c *Center) add(level Level, title, message string, wf *drag.Notification) Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	created := c.now()
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Title:     title,
		Message:   message,
		Workflow:  wf,
		CreatedAt: created,
		ExpiresAt: created.Add(c.ttl),
	}
	c.items = append(c.items, n)
	return n
}

// Notify implements drag.NotificationSink, turning a workflow trigger into an info banner.
func (c *Center) Notify(wf drag.Notification) {
	c.add(LevelInfo, "Workflow Triggered", Message(wf), &wf)
}

// Message formats the banner text for a workflow notification
func Message(wf drag.Notification) string {
	return "\"" + wf.ItemTitle + "\" moved to " + wf.ColumnTitle + "\n" + wf.Description
}

// Dismiss removes the notification with the given id. Returns false if it was not active.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// DismissAll removes every notification.
func (c *Center) DismissAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []Notification{}
}

// Active prunes expired notifications and returns the rest, oldest first.
func (c *Center) Active(now time.Time) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0:0]
	for _, n := range c.items {
		if !n.Expired(now) {
			kept = append(kept, n)
		}
	}
	c.items = kept

	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}

// NextExpiry returns the earliest expiry among active notifications.
func (c *Center) NextExpiry() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var next time.Time
	for _, n := range c.items {
		if next.IsZero() || n.ExpiresAt.Before(next) {
			next = n.ExpiresAt
		}
	}
	return next, !next.IsZero()
}
