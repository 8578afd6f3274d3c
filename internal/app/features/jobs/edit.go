// internal/app/features/jobs/edit.go
package jobs

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	jobstore "github.com/toonworks/studiohub/internal/app/store/jobs"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
)

// editJobInput defines validation rules for renaming a job title.
type editJobInput struct {
	Name string `validate:"required,max=120" label:"Job title"`
}

// ServeEdit renders the Edit Job page. Built-in defaults can be edited
// too; saving writes a stored record that shadows the default.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	name, ok := h.jobName(ctx, id)
	if !ok {
		uierrors.RenderNotFound(w, r, "Job not found.", "/jobs")
		return
	}

	data := editData{ID: id, Name: name}
	formutil.SetBase(&data.Base, r, "Edit Job", "/jobs")

	templates.Render(w, r, "job_edit", data)
}

// HandleEdit processes the Edit Job form POST. The store upserts, so a
// rename of a default job sticks without a prior explicit create.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/jobs")
		return
	}

	id := chi.URLParam(r, "id")
	name := strings.TrimSpace(r.FormValue("name"))

	renderWithError := func(msg string) {
		data := editData{ID: id, Name: name}
		formutil.SetBase(&data.Base, r, "Edit Job", "/jobs")
		data.SetError(msg)
		templates.Render(w, r, "job_edit", data)
	}

	input := editJobInput{Name: name}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, ok := h.jobName(ctx, id); !ok {
		uierrors.RenderNotFound(w, r, "Job not found.", "/jobs")
		return
	}

	if err := h.Jobs.Update(ctx, id, name); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating job", err, "A database error occurred.", "/jobs")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.JobsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// jobName resolves the current display name for a job id, consulting the
// stored record first and the built-in defaults second.
func (h *Handler) jobName(ctx context.Context, id string) (string, bool) {
	if j, err := h.Jobs.GetByID(ctx, id); err == nil {
		return j.Name, true
	} else if err != jobstore.ErrNotFound {
		return "", false
	}
	for _, j := range affiliation.DefaultJobs() {
		if j.ID == id {
			return j.Name, true
		}
	}
	return "", false
}
