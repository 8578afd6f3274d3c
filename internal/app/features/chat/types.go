// internal/app/features/chat/types.go
package chat

import (
	"time"

	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// pickerItem is one department entry on the chat picker page.
type pickerItem struct {
	ID      string
	Name    string
	Members int
}

// pickerData is the view model for the department picker page.
type pickerData struct {
	viewdata.BaseVM

	Items []pickerItem
}

// rosterItem is one user in the room sidebar.
type rosterItem struct {
	ID     string
	Name   string
	Online bool
}

// messageItem is one rendered chat message.
type messageItem struct {
	ID         string
	SenderName string
	Body       string
	SentAt     time.Time
	Mine       bool
}

// roomData is the view model for a department chat room.
type roomData struct {
	viewdata.BaseVM

	DepartmentID   string
	DepartmentName string

	Roster   []rosterItem
	Messages []messageItem
}
