// internal/domain/models/chatmessage.go
package models

import "time"

// ChatMessage is one message in the department team chat. Body is sanitized
// before persistence. Recipients holds the user ids the sender addressed;
// an empty list means the whole department.
type ChatMessage struct {
	ID           string   `bson:"_id,omitempty" json:"id"`
	SenderID     string   `bson:"sender_id" json:"sender_id"`
	SenderName   string   `bson:"sender_name,omitempty" json:"sender_name,omitempty"`
	DepartmentID string   `bson:"department_id" json:"department_id"`
	Recipients   []string `bson:"recipients,omitempty" json:"recipients,omitempty"`
	Body         string   `bson:"body" json:"body"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
