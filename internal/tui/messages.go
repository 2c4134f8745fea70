package tui

import "time"

// holdTickMsg checks whether a held press has become a drag
type holdTickMsg struct {
	At time.Time
}

// expireNotificationsMsg removes notifications past their deadline
type expireNotificationsMsg struct {
	At time.Time
}
