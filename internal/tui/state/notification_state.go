package state

import (
	"time"

	"charm.land/lipgloss/v2"
)

// DefaultNotificationTTL is how long a notification stays on screen
const DefaultNotificationTTL = 4 * time.Second

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications, such as a rolled-back move
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level     NotificationLevel
	Message   string
	ExpiresAt time.Time
}

// NotificationState manages transient notifications.
type NotificationState struct {
	notifications []Notification
	ttl           time.Duration
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{ttl: DefaultNotificationTTL}
}

// SetTTL changes how long future notifications stay visible.
func (s *NotificationState) SetTTL(ttl time.Duration) {
	if ttl > 0 {
		s.ttl = ttl
	}
}

// TTL returns how long notifications stay visible.
func (s *NotificationState) TTL() time.Duration {
	return s.ttl
}

// Add adds a new notification that expires TTL after now.
func (s *NotificationState) Add(level NotificationLevel, message string, now time.Time) {
	s.notifications = append(s.notifications, Notification{
		Level:     level,
		Message:   message,
		ExpiresAt: now.Add(s.ttl),
	})
}

// Expire drops every notification whose deadline is not after now and
// reports whether anything was removed.
func (s *NotificationState) Expire(now time.Time) bool {
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	removed := len(kept) != len(s.notifications)
	s.notifications = kept
	return removed
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, n := range s.notifications {
		view := renderFunc(n)
		w := lipgloss.Width(view)
		h := lipgloss.Height(view)

		col := max(s.windowWidth-w-1, 0)
		if row+h >= s.windowHeight {
			break
		}

		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row))
		row += h + 1
	}

	return layers
}
