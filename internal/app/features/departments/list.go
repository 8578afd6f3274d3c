// internal/app/features/departments/list.go
package departments

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// ServeList renders the merged department view: stored units plus units
// that exist only as free text on staff records, each with its member
// count.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing users", err, "A database error occurred.", "/dashboard/admin")
		return
	}
	merged, err := h.Departments.ListMerged(ctx, users)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing departments", err, "A database error occurred.", "/dashboard/admin")
		return
	}

	resolve := func(u models.User) string {
		return affiliation.DepartmentName(u, merged)
	}

	items := make([]listItem, 0, len(merged))
	for _, d := range merged {
		items = append(items, listItem{
			ID:          d.ID,
			Name:        d.Name,
			ManagerName: h.managerName(users, d.Manager),
			Members:     affiliation.CountMembers(d.Name, users, resolve),
			Synthetic:   d.Synthetic(),
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Departments", "/dashboard/admin"),
		Items:  items,
	}

	templates.Render(w, r, "departments_list", data)
}

// managerName resolves a manager user id to a display name, or "".
func (h *Handler) managerName(users []models.User, managerID string) string {
	if managerID == "" {
		return ""
	}
	for _, u := range users {
		if u.ID == managerID {
			return u.FullName()
		}
	}
	return ""
}
