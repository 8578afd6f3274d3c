// internal/app/features/users/helpers.go
package users

import (
	"context"

	"github.com/toonworks/studiohub/internal/domain/models"
)

// refData is the reference snapshot the list and form pages resolve
// affiliations against.
type refData struct {
	Jobs        []models.Job
	Departments []models.Department
	Roles       []models.Role
}

// loadRefData fetches jobs (stored plus defaults), the merged department
// view, and roles (stored plus templates) in one place. users is the
// directory snapshot the department merge folds free-text units out of.
func (h *Handler) loadRefData(ctx context.Context, users []models.User) (refData, error) {
	jobs, err := h.Jobs.ListWithDefaults(ctx)
	if err != nil {
		return refData{}, err
	}
	departments, err := h.Departments.ListMerged(ctx, users)
	if err != nil {
		return refData{}, err
	}
	roles, err := h.Roles.ListWithTemplates(ctx)
	if err != nil {
		return refData{}, err
	}
	return refData{Jobs: jobs, Departments: departments, Roles: roles}, nil
}

// options converts the reference snapshot into dropdown entries.
func (r refData) options() formOptions {
	var out formOptions
	for _, j := range r.Jobs {
		out.Jobs = append(out.Jobs, option{ID: j.ID, Name: j.Name})
	}
	for _, d := range r.Departments {
		out.Departments = append(out.Departments, option{ID: d.ID, Name: d.Name})
	}
	for _, role := range r.Roles {
		out.Roles = append(out.Roles, option{ID: role.ID, Name: role.Name})
	}
	return out
}

// jobName returns the display name for a job id, or "".
func (r refData) jobName(id string) string {
	for _, j := range r.Jobs {
		if j.ID == id {
			return j.Name
		}
	}
	return ""
}

// departmentName returns the display name for a department id, or "".
func (r refData) departmentName(id string) string {
	for _, d := range r.Departments {
		if d.ID == id {
			return d.Name
		}
	}
	return ""
}

// roleName returns the display name for a role id, trying the storage key
// first and the legacy id second, or "".
func (r refData) roleName(id string) string {
	if id == "" {
		return ""
	}
	for _, role := range r.Roles {
		if role.ID == id {
			return role.Name
		}
	}
	for _, role := range r.Roles {
		if role.LegacyID != "" && role.LegacyID == id {
			return role.Name
		}
	}
	return ""
}
