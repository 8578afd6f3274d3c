// internal/app/features/teams/edit.go
package teams

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	teamstore "github.com/toonworks/studiohub/internal/app/store/teams"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
)

// editTeamInput defines validation rules for editing a team.
type editTeamInput struct {
	Name        string `validate:"required,max=120" label:"Team name"`
	Description string `validate:"max=500" label:"Description"`
}

// ServeEdit renders the Edit Team page.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	team, err := h.Teams.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Team not found.", "/teams")
		return
	}

	rd, err := h.loadRefData(ctx)
	if err != nil {
		uierrors.RenderServerError(w, r, "A database error occurred.", "/teams")
		return
	}

	data := formDataFrom(*team, rd)
	formutil.SetBase(&data.Base, r, "Edit Team", "/teams")

	templates.Render(w, r, "team_edit", data)
}

// HandleEdit processes the Edit Team form POST.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/teams")
		return
	}

	id := chi.URLParam(r, "id")
	team := teamFromForm(r)
	team.ID = id

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rd, err := h.loadRefData(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading team references", err, "A database error occurred.", "/teams")
		return
	}

	renderWithError := func(msg string) {
		data := formDataFrom(team, rd)
		formutil.SetBase(&data.Base, r, "Edit Team", "/teams")
		data.SetError(msg)
		templates.Render(w, r, "team_edit", data)
	}

	input := editTeamInput{Name: team.Name, Description: team.Description}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	if err := h.Teams.Update(ctx, id, team); err != nil {
		if err == teamstore.ErrNotFound {
			uierrors.RenderNotFound(w, r, "Team not found.", "/teams")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error updating team", err, "A database error occurred.", "/teams")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.TeamsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
