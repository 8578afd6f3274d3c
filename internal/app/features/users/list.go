// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// ServeList renders the staff directory: every affiliation column resolved
// to a display name, with search (?q=) and an online-only filter
// (?online=1).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Get(r, "q")
	onlineOnly := query.Get(r, "online") == "1"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := h.Users.Search(ctx, q)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing users", err, "A database error occurred.", "/dashboard/admin")
		return
	}

	// The department merge folds units out of the whole directory, not
	// just the matched rows.
	all := matched
	if q != "" {
		all, err = h.Users.List(ctx)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error listing users", err, "A database error occurred.", "/dashboard/admin")
			return
		}
	}

	refs, err := h.loadRefData(ctx, all)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading reference data", err, "A database error occurred.", "/dashboard/admin")
		return
	}

	now := time.Now()
	items := make([]listItem, 0, len(matched))
	for _, u := range matched {
		online := affiliation.UserOnline(u, now)
		if onlineOnly && !online {
			continue
		}
		items = append(items, listItem{
			ID:             u.ID,
			Name:           u.FullName(),
			Email:          u.Email,
			EmployeeID:     u.EmployeeID,
			JobName:        affiliation.JobName(u, refs.Jobs),
			DepartmentName: affiliation.DepartmentName(u, refs.Departments),
			RoleName:       affiliation.RoleName(u, refs.Roles),
			Status:         u.Status,
			Online:         online,
		})
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, "Staff", "/dashboard/admin"),
		Q:          q,
		OnlineOnly: onlineOnly,
		Items:      items,
		Total:      len(items),
	}

	templates.Render(w, r, "users_list", data)
}
