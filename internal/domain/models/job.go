// internal/domain/models/job.go
package models

import "time"

// Job is a reference-table entry of job titles. Stored jobs use whatever
// key they were created with; the default jobs use slug keys ("artist",
// "cleanup_artist", ...), which is why the key is a string rather than an
// ObjectID.
type Job struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
