// internal/app/features/jobs/list.go
package jobs

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// ServeList renders the job titles list: stored jobs merged with the
// built-in defaults, each with the number of staff resolving to it.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stored, err := h.Jobs.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing jobs", err, "A database error occurred.", "/dashboard/admin")
		return
	}
	merged := affiliation.MergeJobs(stored)

	users, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing users", err, "A database error occurred.", "/dashboard/admin")
		return
	}

	storedIDs := make(map[string]struct{}, len(stored))
	for _, j := range stored {
		storedIDs[j.ID] = struct{}{}
	}

	resolve := func(u models.User) string {
		return affiliation.JobName(u, merged)
	}

	items := make([]listItem, 0, len(merged))
	for _, j := range merged {
		_, isStored := storedIDs[j.ID]
		items = append(items, listItem{
			ID:      j.ID,
			Name:    j.Name,
			Members: affiliation.CountMembers(j.Name, users, resolve),
			Builtin: !isStored,
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Jobs", "/dashboard/admin"),
		Items:  items,
	}

	templates.Render(w, r, "jobs_list", data)
}
