// internal/app/features/roles/new.go
package roles

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	rolestore "github.com/toonworks/studiohub/internal/app/store/roles"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// createRoleInput defines validation rules for creating a role.
type createRoleInput struct {
	Name        string `validate:"required,max=120" label:"Role name"`
	Description string `validate:"max=500" label:"Description"`
}

// ServeNew renders the "New Role" form.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newData{}
	formutil.SetBase(&data.Base, r, "New Role", "/roles")

	templates.Render(w, r, "role_new", data)
}

// HandleCreate processes the New Role form submission. Permissions arrive
// as a textarea with one label per line; the store normalizes each to its
// key form and drops duplicates.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/roles")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	permissions := r.FormValue("permissions")

	renderWithError := func(msg string) {
		data := newData{Name: name, Description: description, Permissions: permissions}
		formutil.SetBase(&data.Base, r, "New Role", "/roles")
		data.SetError(msg)
		templates.Render(w, r, "role_new", data)
	}

	input := createRoleInput{Name: name, Description: description}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	role := models.Role{
		Name:        name,
		Description: description,
		Permissions: splitPermissionLines(permissions),
	}
	if _, err := h.Roles.Create(ctx, role); err != nil {
		msg := "Database error while creating role."
		if err == rolestore.ErrDuplicateName {
			msg = "A role with that name already exists."
		}
		renderWithError(msg)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.RolesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// splitPermissionLines turns textarea content into raw permission labels,
// one per non-empty line.
func splitPermissionLines(s string) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}
