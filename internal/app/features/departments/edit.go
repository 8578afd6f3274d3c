// internal/app/features/departments/edit.go
package departments

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// editDepartmentInput defines validation rules for editing a department.
type editDepartmentInput struct {
	Name        string `validate:"required,max=120" label:"Department name"`
	Description string `validate:"max=500" label:"Description"`
}

// ServeEdit renders the Edit Department page. Synthetic units have no
// stored record to edit; they are promoted through the create form.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	dept, err := h.Departments.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Department not found.", "/departments")
		return
	}

	managers, err := h.managerOptions(ctx)
	if err != nil {
		uierrors.RenderServerError(w, r, "A database error occurred.", "/departments")
		return
	}

	data := editData{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		Manager:     dept.Manager,
		Managers:    managers,
	}
	formutil.SetBase(&data.Base, r, "Edit Department", "/departments")

	templates.Render(w, r, "department_edit", data)
}

// HandleEdit processes the Edit Department form POST.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/departments")
		return
	}

	id := chi.URLParam(r, "id")
	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	manager := strings.TrimSpace(r.FormValue("manager"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	managers, err := h.managerOptions(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading managers", err, "A database error occurred.", "/departments")
		return
	}

	renderWithError := func(msg string) {
		data := editData{
			ID:          id,
			Name:        name,
			Description: description,
			Manager:     manager,
			Managers:    managers,
		}
		formutil.SetBase(&data.Base, r, "Edit Department", "/departments")
		data.SetError(msg)
		templates.Render(w, r, "department_edit", data)
	}

	input := editDepartmentInput{Name: name, Description: description}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	upd := models.Department{
		Name:        name,
		Description: description,
		Manager:     manager,
	}
	if err := h.Departments.Update(ctx, id, upd); err != nil {
		switch err {
		case departmentstore.ErrNotFound:
			uierrors.RenderNotFound(w, r, "Department not found.", "/departments")
		case departmentstore.ErrDuplicateName:
			renderWithError("A department with that name already exists.")
		default:
			h.ErrLog.LogServerError(w, r, "database error updating department", err, "A database error occurred.", "/departments")
		}
		return
	}

	ret := navigation.SafeBackURL(r, navigation.DepartmentsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
