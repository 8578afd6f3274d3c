// internal/app/features/teams/helpers.go
package teams

import (
	"context"

	"github.com/toonworks/studiohub/internal/domain/models"
)

// refData carries the lookup snapshots the team pages resolve against.
type refData struct {
	Users       []models.User
	Departments []models.Department
}

// loadRefData fetches the user directory and the merged department list in
// one place so every page resolves against the same snapshot.
func (h *Handler) loadRefData(ctx context.Context) (*refData, error) {
	users, err := h.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	depts, err := h.Departments.ListMerged(ctx, users)
	if err != nil {
		return nil, err
	}
	return &refData{Users: users, Departments: depts}, nil
}

// typeOptions builds the department dropdown.
func (rd *refData) typeOptions() []typeOption {
	out := make([]typeOption, 0, len(rd.Departments))
	for _, d := range rd.Departments {
		out = append(out, typeOption{ID: d.ID, Name: d.Name})
	}
	return out
}

// userOptions builds the checker and member dropdowns.
func (rd *refData) userOptions() []userOption {
	out := make([]userOption, 0, len(rd.Users))
	for _, u := range rd.Users {
		out = append(out, userOption{ID: u.ID, Name: u.FullName()})
	}
	return out
}

// userName resolves a user id to a display name, or "".
func (rd *refData) userName(id string) string {
	if id == "" {
		return ""
	}
	for _, u := range rd.Users {
		if u.ID == id {
			return u.FullName()
		}
	}
	return ""
}

// typeName resolves a team type (department id) to a display name. Teams
// referencing a synthetic unit carry the name itself as the id.
func (rd *refData) typeName(id string) string {
	if id == "" {
		return ""
	}
	for _, d := range rd.Departments {
		if d.ID == id {
			return d.Name
		}
	}
	return id
}
