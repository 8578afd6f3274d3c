// internal/app/features/teams/new.go
package teams

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// createTeamInput defines validation rules for creating a team.
type createTeamInput struct {
	Name        string `validate:"required,max=120" label:"Team name"`
	Description string `validate:"max=500" label:"Description"`
}

// ServeNew renders the "New Team" form.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rd, err := h.loadRefData(ctx)
	if err != nil {
		uierrors.RenderServerError(w, r, "A database error occurred.", "/teams")
		return
	}

	data := formData{Types: rd.typeOptions(), Users: rd.userOptions()}
	formutil.SetBase(&data.Base, r, "New Team", "/teams")

	templates.Render(w, r, "team_new", data)
}

// HandleCreate processes the New Team form submission.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/teams")
		return
	}

	team := teamFromForm(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rd, err := h.loadRefData(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading team references", err, "A database error occurred.", "/teams")
		return
	}

	renderWithError := func(msg string) {
		data := formDataFrom(team, rd)
		formutil.SetBase(&data.Base, r, "New Team", "/teams")
		data.SetError(msg)
		templates.Render(w, r, "team_new", data)
	}

	input := createTeamInput{Name: team.Name, Description: team.Description}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	if _, err := h.Teams.Create(ctx, team); err != nil {
		renderWithError("Database error while creating team.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.TeamsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// teamFromForm reads the team fields out of a parsed form.
func teamFromForm(r *http.Request) models.Team {
	return models.Team{
		Name:          strings.TrimSpace(r.FormValue("name")),
		Description:   strings.TrimSpace(r.FormValue("description")),
		Type:          strings.TrimSpace(r.FormValue("type")),
		Checker:       strings.TrimSpace(r.FormValue("checker")),
		BackupChecker: strings.TrimSpace(r.FormValue("backup_checker")),
		Members:       r.Form["members"],
	}
}

// formDataFrom rebuilds the form view model from a submitted team.
func formDataFrom(t models.Team, rd *refData) formData {
	return formData{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Type:          t.Type,
		Checker:       t.Checker,
		BackupChecker: t.BackupChecker,
		Members:       t.Members,
		Types:         rd.typeOptions(),
		Users:         rd.userOptions(),
	}
}
