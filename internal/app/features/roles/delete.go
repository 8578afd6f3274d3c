// internal/app/features/roles/delete.go
package roles

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	rolestore "github.com/toonworks/studiohub/internal/app/store/roles"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// ServeDelete renders the delete confirmation page. Deleting a role does
// not touch user records; staff still referencing the name keep it as a
// free-text role.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	role, err := h.Roles.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Role not found.", "/roles")
		return
	}

	members := 0
	users, uerr := h.Users.List(ctx)
	stored, serr := h.Roles.List(ctx)
	if uerr == nil && serr == nil {
		merged := rolestore.MergeTemplates(stored)
		key := normalize.Key(role.Name)
		for _, u := range users {
			for _, c := range affiliation.RoleCandidates(u, merged) {
				if normalize.Key(c) == key {
					members++
					break
				}
			}
		}
	}

	data := deleteData{
		BaseVM:  viewdata.NewBaseVM(r, "Delete Role", "/roles"),
		ID:      role.ID,
		Name:    role.Name,
		Members: members,
	}

	templates.Render(w, r, "role_delete", data)
}

// HandleDelete removes the stored role record.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Roles.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting role", err, "A database error occurred.", "/roles")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "Role not found.", "/roles")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.RolesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
