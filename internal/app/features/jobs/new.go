// internal/app/features/jobs/new.go
package jobs

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	jobstore "github.com/toonworks/studiohub/internal/app/store/jobs"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// createJobInput defines validation rules for creating a job title.
type createJobInput struct {
	Name string `validate:"required,max=120" label:"Job title"`
}

// ServeNew renders the "New Job" form.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newData{}
	formutil.SetBase(&data.Base, r, "New Job", "/jobs")

	templates.Render(w, r, "job_new", data)
}

// HandleCreate processes the New Job form submission.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/jobs")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))

	renderWithError := func(msg string) {
		data := newData{Name: name}
		formutil.SetBase(&data.Base, r, "New Job", "/jobs")
		data.SetError(msg)
		templates.Render(w, r, "job_new", data)
	}

	input := createJobInput{Name: name}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Jobs.Create(ctx, models.Job{Name: name}); err != nil {
		msg := "Database error while creating job."
		if err == jobstore.ErrDuplicateID {
			msg = "A job with that title already exists."
		}
		renderWithError(msg)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.JobsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
