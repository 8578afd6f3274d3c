// internal/app/system/affiliation/online.go
package affiliation

import (
	"time"

	"github.com/toonworks/studiohub/internal/domain/models"
)

// OnlineWindow is how recently a user must have been active to count as
// online. Online status is derived, never stored.
const OnlineWindow = 5 * time.Minute

// Online reports whether lastActive falls within the window of now. A zero
// (absent or unparseable) timestamp is offline.
func Online(lastActive, now time.Time) bool {
	if lastActive.IsZero() {
		return false
	}
	return now.Sub(lastActive) <= OnlineWindow
}

// UserOnline is Online applied to a user record.
func UserOnline(u models.User, now time.Time) bool {
	return Online(u.LastActive, now)
}

// CountOnline counts users currently online.
func CountOnline(users []models.User, now time.Time) int {
	n := 0
	for _, u := range users {
		if UserOnline(u, now) {
			n++
		}
	}
	return n
}
