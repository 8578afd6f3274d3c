// internal/app/features/departments/new.go
package departments

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// createDepartmentInput defines validation rules for creating a department.
type createDepartmentInput struct {
	Name        string `validate:"required,max=120" label:"Department name"`
	Description string `validate:"max=500" label:"Description"`
}

// ServeNew renders the "New Department" form. Creating a department with
// the name of a synthetic unit promotes it to a stored record.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	managers, err := h.managerOptions(ctx)
	if err != nil {
		uierrors.RenderServerError(w, r, "A database error occurred.", "/departments")
		return
	}

	data := newData{Managers: managers, Name: strings.TrimSpace(r.URL.Query().Get("name"))}
	formutil.SetBase(&data.Base, r, "New Department", "/departments")

	templates.Render(w, r, "department_new", data)
}

// HandleCreate processes the New Department form submission.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/departments")
		return
	}

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
		data := newData{
			Name:        name,
			Description: description,
			Manager:     manager,
			Managers:    managers,
		}
		formutil.SetBase(&data.Base, r, "New Department", "/departments")
		data.SetError(msg)
		templates.Render(w, r, "department_new", data)
	}

	input := createDepartmentInput{Name: name, Description: description}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	dept := models.Department{
		Name:        name,
		Description: description,
		Manager:     manager,
	}
	if _, err := h.Departments.Create(ctx, dept); err != nil {
		msg := "Database error while creating department."
		if err == departmentstore.ErrDuplicateName {
			msg = "A department with that name already exists."
		}
		renderWithError(msg)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.DepartmentsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// managerOptions builds the manager dropdown from the staff directory.
func (h *Handler) managerOptions(ctx context.Context) ([]managerOption, error) {
	users, err := h.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]managerOption, 0, len(users))
	for _, u := range users {
		out = append(out, managerOption{ID: u.ID, Name: u.FullName()})
	}
	return out, nil
}
