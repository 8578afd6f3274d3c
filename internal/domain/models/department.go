// internal/domain/models/department.go
package models

import "time"

// Department is an organizational unit. The collection is named "sections"
// for historical reasons; both names appear in user records.
//
// A department may exist only implicitly, as a free-text value on user
// records with no stored document. Such synthetic units are materialized in
// memory with the name as both key and name, carry no manager, and become
// stored records only through an explicit create.
type Department struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	NameKey     string `bson:"name_key,omitempty" json:"-"` // normalized name, set at write time
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Manager     string `bson:"manager,omitempty" json:"manager,omitempty"` // user id, empty when unassigned

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Synthetic reports whether this unit was materialized from user free text
// rather than loaded from the sections collection.
func (d Department) Synthetic() bool {
	return d.ID == d.Name && d.CreatedAt.IsZero()
}
