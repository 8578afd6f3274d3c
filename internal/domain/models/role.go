// internal/domain/models/role.go
package models

import "time"

// Role is a named permission set. NameKey is the normalized form of Name
// (lowercased, trimmed) and is unique across the collection; duplicates are
// rejected at write time.
//
// LegacyID is a secondary addressing scheme: historical user records may
// reference a role either by its storage key or by this field, so lookups
// must try both.
type Role struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	LegacyID    string   `bson:"id,omitempty" json:"legacy_id,omitempty"`
	Name        string   `bson:"name" json:"name"`
	NameKey     string   `bson:"name_key" json:"name_key"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Permissions []string `bson:"permissions,omitempty" json:"permissions,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
