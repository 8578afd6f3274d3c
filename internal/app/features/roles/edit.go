// internal/app/features/roles/edit.go
package roles

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	rolestore "github.com/toonworks/studiohub/internal/app/store/roles"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// editRoleInput defines validation rules for editing a role.
type editRoleInput struct {
	Name        string `validate:"required,max=120" label:"Role name"`
	Description string `validate:"max=500" label:"Description"`
}

// ServeEdit renders the Edit Role page. Template roles have no stored
// record; editing one goes through the create form instead.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	role, err := h.Roles.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Role not found.", "/roles")
		return
	}

	data := editData{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: strings.Join(role.Permissions, "\n"),
	}
	formutil.SetBase(&data.Base, r, "Edit Role", "/roles")

	templates.Render(w, r, "role_edit", data)
}

// HandleEdit processes the Edit Role form POST.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/roles")
		return
	}

	id := chi.URLParam(r, "id")
	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	permissions := r.FormValue("permissions")

	renderWithError := func(msg string) {
		data := editData{ID: id, Name: name, Description: description, Permissions: permissions}
		formutil.SetBase(&data.Base, r, "Edit Role", "/roles")
		data.SetError(msg)
		templates.Render(w, r, "role_edit", data)
	}

	input := editRoleInput{Name: name, Description: description}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	upd := models.Role{
		Name:        name,
		Description: description,
		Permissions: splitPermissionLines(permissions),
	}
	if err := h.Roles.Update(ctx, id, upd); err != nil {
		switch err {
		case rolestore.ErrNotFound:
			uierrors.RenderNotFound(w, r, "Role not found.", "/roles")
		case rolestore.ErrDuplicateName:
			renderWithError("A role with that name already exists.")
		default:
			h.ErrLog.LogServerError(w, r, "database error updating role", err, "A database error occurred.", "/roles")
		}
		return
	}

	ret := navigation.SafeBackURL(r, navigation.RolesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
