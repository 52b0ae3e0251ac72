package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// notificationTickMsg fires when the earliest visible notification expires
type notificationTickMsg struct {
	at time.Time
}

// scheduleNotificationTick returns a command that fires when the next
// notification expires, or nil when nothing is showing.
func (m Model) scheduleNotificationTick() tea.Cmd {
	next, ok := m.session.Notifications().NextExpiry()
	if !ok {
		return nil
	}
	wait := max(next.Sub(m.now()), time.Millisecond)
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return notificationTickMsg{at: t}
	})
}
