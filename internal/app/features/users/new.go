// internal/app/features/users/new.go
package users

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/identity"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

// createUserInput defines validation rules for adding a staff member.
type createUserInput struct {
	FirstName string `validate:"required,max=100" label:"First name"`
	LastName  string `validate:"required,max=100" label:"Last name"`
	Email     string `validate:"required,email" label:"Email"`
	Password  string `validate:"required" label:"Password"`
}

// ServeNew renders the "Add Staff" form.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Users.List(ctx)
	if err != nil {
		uierrors.RenderServerError(w, r, "A database error occurred.", "/users")
		return
	}
	refs, err := h.loadRefData(ctx, all)
	if err != nil {
		uierrors.RenderServerError(w, r, "A database error occurred.", "/users")
		return
	}

	data := newData{formOptions: refs.options()}
	formutil.SetBase(&data.Base, r, "Add Staff", "/users")

	templates.Render(w, r, "user_new", data)
}

// HandleCreate processes the Add Staff form: the identity account is
// created first, then the staff record keyed by the new account's UID.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/users")
		return
	}

	first := strings.TrimSpace(r.FormValue("first_name"))
	last := strings.TrimSpace(r.FormValue("last_name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	employeeID := strings.TrimSpace(r.FormValue("employee_id"))
	jobID := strings.TrimSpace(r.FormValue("job_id"))
	departmentID := strings.TrimSpace(r.FormValue("department_id"))
	roleID := strings.TrimSpace(r.FormValue("role_id"))
	status := strings.TrimSpace(r.FormValue("status"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing users", err, "A database error occurred.", "/users")
		return
	}
	refs, err := h.loadRefData(ctx, all)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading reference data", err, "A database error occurred.", "/users")
		return
	}

	renderWithError := func(msg string) {
		data := newData{
			formOptions:  refs.options(),
			FirstName:    first,
			LastName:     last,
			Email:        email,
			EmployeeID:   employeeID,
			JobID:        jobID,
			DepartmentID: departmentID,
			RoleID:       roleID,
			Status:       status,
		}
		formutil.SetBase(&data.Base, r, "Add Staff", "/users")
		data.SetError(msg)
		templates.Render(w, r, "user_new", data)
	}

	input := createUserInput{FirstName: first, LastName: last, Email: email, Password: password}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	account, err := h.Identity.CreateAccount(ctx, email, password)
	switch {
	case errors.Is(err, identity.ErrEmailInUse):
		renderWithError("An account with that email already exists.")
		return
	case errors.Is(err, identity.ErrWeakPassword):
		renderWithError("Password must be at least 6 characters.")
		return
	case errors.Is(err, identity.ErrInvalidEmail):
		renderWithError("A valid email address is required.")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "create identity account failed", err, "Unable to create the account.", "/users")
		return
	}

	user := models.User{
		ID:           account.UID,
		FirstName:    first,
		LastName:     last,
		Email:        account.Email,
		EmployeeID:   employeeID,
		JobID:        jobID,
		JobTitle:     refs.jobName(jobID),
		DepartmentID: departmentID,
		Department:   refs.departmentName(departmentID),
		RoleID:       roleID,
		Role:         refs.roleName(roleID),
		Status:       status,
	}

	if _, err := h.Users.Create(ctx, user); err != nil {
		// The identity account already exists at this point; say so, or an
		// admin will retry and hit the duplicate-email error instead.
		h.Log.Error("staff record creation failed after account creation",
			zap.Error(err),
			zap.String("uid", account.UID),
			zap.String("email", account.Email))
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			renderWithError("A staff record with that email already exists.")
			return
		}
		renderWithError("The sign-in account was created, but saving the staff record failed. Edit the record instead of re-adding it.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.UsersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
