// internal/app/system/affiliation/resolve.go

// Package affiliation resolves a user's effective job, department, and role
// from the several historical shapes those fields take on user records, and
// classifies the role for dashboard routing.
//
// All functions are pure, total, and read-only: they operate on in-memory
// snapshots, never perform I/O, and degrade to the empty string (the
// unresolved sentinel, rendered as "-" at the template boundary) instead of
// returning errors. An empty reference snapshot simply means nothing
// matches and the chain falls through to the next tier, so callers may
// invoke them before every fetch has completed.
package affiliation

import (
	"strings"

	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// JobName resolves a user's effective job title. Precedence: the
// denormalized job_title verbatim, then a job_id lookup. A dangling job_id
// resolves to unresolved, not an error. The legacy free-text job field is
// carried on records but never consulted.
func JobName(u models.User, jobs []models.Job) string {
	if u.JobTitle != "" {
		return u.JobTitle
	}
	if u.JobID != "" {
		for _, j := range jobs {
			if j.ID == u.JobID {
				return j.Name
			}
		}
	}
	return ""
}

// DepartmentName resolves a user's effective department: the denormalized
// department verbatim, then a department_id lookup, then the legacy section
// field. Multiple tiers may hold conflicting values at once; precedence
// decides, never merging.
func DepartmentName(u models.User, departments []models.Department) string {
	if u.Department != "" {
		return u.Department
	}
	if u.DepartmentID != "" {
		for _, d := range departments {
			if d.ID == u.DepartmentID {
				return d.Name
			}
		}
	}
	if u.Section != "" {
		return u.Section
	}
	return ""
}

// RoleCandidates extracts the normalized role candidate set for a user:
//
//  1. roles stored as an array: each element lowercased and trimmed,
//     empties dropped;
//  2. roles stored as a delimited string: split on , ; | / and normalized;
//  3. role_id: looked up first by storage key, then by the legacy id field
//     (historical records use either addressing scheme);
//  4. job_title as the last resort.
//
// The result is empty when nothing resolves.
func RoleCandidates(u models.User, roles []models.Role) []string {
	var out []string

	switch {
	case len(u.Roles.Values) > 0:
		for _, v := range u.Roles.Values {
			if k := normalize.Key(v); k != "" {
				out = append(out, k)
			}
		}
	case u.Roles.Raw != "":
		out = normalize.SplitRoles(u.Roles.Raw)
	}
	if len(out) > 0 {
		return out
	}

	if u.RoleID != "" {
		if r, ok := lookupRole(roles, u.RoleID); ok {
			if k := normalize.Key(r.Name); k != "" {
				return []string{k}
			}
		}
	}

	if k := normalize.Key(u.JobTitle); k != "" {
		return []string{k}
	}
	return nil
}

// RoleName joins the candidate set for display.
func RoleName(u models.User, roles []models.Role) string {
	return strings.Join(RoleCandidates(u, roles), ", ")
}

// lookupRole tries the storage key first, then the legacy id field.
func lookupRole(roles []models.Role, id string) (models.Role, bool) {
	for _, r := range roles {
		if r.ID == id {
			return r, true
		}
	}
	for _, r := range roles {
		if r.LegacyID != "" && r.LegacyID == id {
			return r, true
		}
	}
	return models.Role{}, false
}
