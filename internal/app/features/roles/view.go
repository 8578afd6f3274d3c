// internal/app/features/roles/view.go
package roles

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	rolestore "github.com/toonworks/studiohub/internal/app/store/roles"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// ServeView renders the role detail page with the staff who resolve to it.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	role, err := h.Roles.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Role not found.", "/roles")
		return
	}

	data := viewData{
		BaseVM:      viewdata.NewBaseVM(r, role.Name, "/roles"),
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: role.Permissions,
	}

	users, uerr := h.Users.List(ctx)
	stored, serr := h.Roles.List(ctx)
	if uerr == nil && serr == nil {
		merged := rolestore.MergeTemplates(stored)
		key := normalize.Key(role.Name)
		for _, u := range users {
			for _, c := range affiliation.RoleCandidates(u, merged) {
				if normalize.Key(c) == key {
					data.Members = append(data.Members, u.FullName())
					break
				}
			}
		}
	}

	templates.Render(w, r, "role_view", data)
}
