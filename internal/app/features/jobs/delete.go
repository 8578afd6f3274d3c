// internal/app/features/jobs/delete.go
package jobs

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// ServeDelete renders the delete confirmation page. Only stored job
// records can be deleted; deleting one that shadows a built-in default
// restores the default name.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	job, err := h.Jobs.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Job not found.", "/jobs")
		return
	}

	builtin := false
	for _, d := range affiliation.DefaultJobs() {
		if d.ID == id {
			builtin = true
			break
		}
	}

	members := 0
	if users, uerr := h.Users.List(ctx); uerr == nil {
		merged, merr := h.Jobs.ListWithDefaults(ctx)
		if merr == nil {
			resolve := func(u models.User) string {
				return affiliation.JobName(u, merged)
			}
			members = affiliation.CountMembers(job.Name, users, resolve)
		}
	}

	data := deleteData{
		BaseVM:  viewdata.NewBaseVM(r, "Delete Job", "/jobs"),
		ID:      job.ID,
		Name:    job.Name,
		Members: members,
		Builtin: builtin,
	}

	templates.Render(w, r, "job_delete", data)
}

// HandleDelete removes the stored job record.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Jobs.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting job", err, "A database error occurred.", "/jobs")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "Job not found.", "/jobs")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.JobsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
