// internal/domain/models/team.go
package models

import "time"

// Team is a production team. Type references a department id, Checker and
// BackupChecker reference user ids, Members holds user ids.
type Team struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`
	Type          string   `bson:"type,omitempty" json:"type,omitempty"`
	Checker       string   `bson:"checker,omitempty" json:"checker,omitempty"`
	BackupChecker string   `bson:"backup_checker,omitempty" json:"backup_checker,omitempty"`
	Members       []string `bson:"members,omitempty" json:"members,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
