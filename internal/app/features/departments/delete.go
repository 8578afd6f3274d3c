// internal/app/features/departments/delete.go
package departments

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// ServeDelete renders the delete confirmation page with the member count
// so the admin can see what the unit still covers. Deleting a stored
// department does not touch user records; the unit reappears as synthetic
// if staff still reference the name.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	dept, err := h.Departments.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Department not found.", "/departments")
		return
	}

	members := 0
	if users, err := h.Users.List(ctx); err == nil {
		merged, merr := h.Departments.ListMerged(ctx, users)
		if merr == nil {
			resolve := func(u models.User) string {
				return affiliation.DepartmentName(u, merged)
			}
			members = affiliation.CountMembers(dept.Name, users, resolve)
		}
	}

	data := deleteData{
		BaseVM:  viewdata.NewBaseVM(r, "Delete Department", "/departments"),
		ID:      dept.ID,
		Name:    dept.Name,
		Members: members,
	}

	templates.Render(w, r, "department_delete", data)
}

// HandleDelete removes the stored department record.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Departments.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting department", err, "A database error occurred.", "/departments")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "Department not found.", "/departments")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.DepartmentsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
