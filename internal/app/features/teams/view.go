// internal/app/features/teams/view.go
package teams

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// ServeView renders the team detail page with all references resolved to
// display names.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
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

	memberNames := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		if name := rd.userName(m); name != "" {
			memberNames = append(memberNames, name)
		}
	}

	data := viewData{
		BaseVM:            viewdata.NewBaseVM(r, team.Name, "/teams"),
		ID:                team.ID,
		Name:              team.Name,
		Description:       team.Description,
		TypeName:          rd.typeName(team.Type),
		CheckerName:       rd.userName(team.Checker),
		BackupCheckerName: rd.userName(team.BackupChecker),
		MemberNames:       memberNames,
	}

	templates.Render(w, r, "team_view", data)
}
