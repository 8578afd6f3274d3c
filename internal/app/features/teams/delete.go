// internal/app/features/teams/delete.go
package teams

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// ServeDelete renders the delete confirmation page.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	team, err := h.Teams.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Team not found.", "/teams")
		return
	}

	data := deleteData{
		BaseVM:  viewdata.NewBaseVM(r, "Delete Team", "/teams"),
		ID:      team.ID,
		Name:    team.Name,
		Members: len(team.Members),
	}

	templates.Render(w, r, "team_delete", data)
}

// HandleDelete removes the team record. Member user records are untouched.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Teams.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting team", err, "A database error occurred.", "/teams")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "Team not found.", "/teams")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.TeamsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
