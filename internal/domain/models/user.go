// internal/domain/models/user.go
package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// User is a staff record in the users collection.
//
// The document key is the identity-provider UID. Affiliation fields exist in
// up to three historical shapes each (denormalized text, reference id, legacy
// free text); the affiliation package resolves the effective value through a
// fixed precedence chain, so none of these fields may be renamed or dropped
// while legacy records remain.
type User struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	FirstName  string `bson:"first_name" json:"first_name"`
	LastName   string `bson:"last_name" json:"last_name"`
	FullNameCI string `bson:"full_name_ci,omitempty" json:"-"` // folded full name, set at write time for search
	Email      string `bson:"email" json:"email"`
	EmployeeID string `bson:"employee_id,omitempty" json:"employee_id,omitempty"`

	// Job affiliation: denormalized title, reference id. Job is legacy free
	// text carried on old records; it is never read for resolution.
	JobID    string `bson:"job_id,omitempty" json:"job_id,omitempty"`
	JobTitle string `bson:"job_title,omitempty" json:"job_title,omitempty"`
	Job      string `bson:"job,omitempty" json:"job,omitempty"`

	// Department affiliation: denormalized name, reference id, legacy section.
	DepartmentID string `bson:"department_id,omitempty" json:"department_id,omitempty"`
	Department   string `bson:"department,omitempty" json:"department,omitempty"`
	Section      string `bson:"section,omitempty" json:"section,omitempty"`

	// Role affiliation. Role is denormalized from RoleID at write time for
	// fast lookup during login. Roles is the legacy multi-valued field.
	RoleID string   `bson:"role_id,omitempty" json:"role_id,omitempty"`
	Role   string   `bson:"role,omitempty" json:"role,omitempty"`
	Roles  RoleList `bson:"roles,omitempty" json:"roles,omitempty"`

	Status     string    `bson:"status,omitempty" json:"status,omitempty"`
	LastActive time.Time `bson:"last_active,omitempty" json:"last_active,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// RoleList tolerates the two historical encodings of the roles field:
// an array of strings, or a single delimited string. The distinction is
// preserved because the resolution rules differ (array elements are taken
// whole; a string is split on delimiters).
type RoleList struct {
	Values []string // set when the field was stored as an array
	Raw    string   // set when the field was stored as a single string
}

// IsZero reports whether no roles value was present on the document.
func (rl RoleList) IsZero() bool {
	return len(rl.Values) == 0 && rl.Raw == ""
}

// UnmarshalBSONValue accepts an array, a string, or anything else (ignored).
// Malformed values degrade to an empty list rather than failing the decode,
// since resolution must stay total over legacy records.
func (rl *RoleList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*rl = RoleList{}
	switch t {
	case bson.TypeArray:
		var raw []interface{}
		if err := bson.UnmarshalValue(t, data, &raw); err != nil {
			return nil
		}
		for _, v := range raw {
			if v == nil {
				continue
			}
			rl.Values = append(rl.Values, fmt.Sprint(v))
		}
	case bson.TypeString:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return nil
		}
		rl.Raw = s
	}
	return nil
}

// MarshalBSONValue writes back whichever shape the value holds, preferring
// the array form for values set programmatically.
func (rl RoleList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if len(rl.Values) > 0 {
		return bson.MarshalValue(rl.Values)
	}
	return bson.MarshalValue(rl.Raw)
}
