// internal/app/features/users/edit.go
package users

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/identity"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"github.com/toonworks/studiohub/internal/app/system/authz"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/navigation"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// editUserInput defines validation rules for editing a staff member.
type editUserInput struct {
	FirstName string `validate:"required,max=100" label:"First name"`
	LastName  string `validate:"required,max=100" label:"Last name"`
	Email     string `validate:"required,email" label:"Email"`
}

// ServeEdit renders the Edit Staff page.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Staff member not found.", "/users")
		return
	}

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

	data := editData{
		formOptions:  refs.options(),
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		EmployeeID:   user.EmployeeID,
		JobID:        user.JobID,
		DepartmentID: user.DepartmentID,
		RoleID:       user.RoleID,
		Status:       user.Status,
	}
	formutil.SetBase(&data.Base, r, "Edit Staff", "/users")

	templates.Render(w, r, "user_edit", data)
}

// HandleEdit processes the Edit Staff form POST. Affiliation display names
// are denormalized from the selected ids at write time, and an email
// change writes the staff record before the identity provider.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/users")
		return
	}

	id := chi.URLParam(r, "id")
	first := strings.TrimSpace(r.FormValue("first_name"))
	last := strings.TrimSpace(r.FormValue("last_name"))
	email := strings.TrimSpace(r.FormValue("email"))
	employeeID := strings.TrimSpace(r.FormValue("employee_id"))
	jobID := strings.TrimSpace(r.FormValue("job_id"))
	departmentID := strings.TrimSpace(r.FormValue("department_id"))
	roleID := strings.TrimSpace(r.FormValue("role_id"))
	status := strings.TrimSpace(r.FormValue("status"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Staff member not found.", "/users")
		return
	}

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

	renderForm := func(errMsg, warning string) {
		data := editData{
			formOptions:  refs.options(),
			ID:           id,
			FirstName:    first,
			LastName:     last,
			Email:        email,
			EmployeeID:   employeeID,
			JobID:        jobID,
			DepartmentID: departmentID,
			RoleID:       roleID,
			Status:       status,
			Warning:      warning,
		}
		formutil.SetBase(&data.Base, r, "Edit Staff", "/users")
		if errMsg != "" {
			data.SetError(errMsg)
		}
		templates.Render(w, r, "user_edit", data)
	}

	input := editUserInput{FirstName: first, LastName: last, Email: email}
	if result := inputval.Validate(input); result.HasErrors() {
		renderForm(result.First(), "")
		return
	}

	upd := userstore.Update{
		FirstName:    first,
		LastName:     last,
		EmployeeID:   employeeID,
		JobID:        jobID,
		JobTitle:     refs.jobName(jobID),
		DepartmentID: departmentID,
		Department:   refs.departmentName(departmentID),
		RoleID:       roleID,
		Role:         refs.roleName(roleID),
		Status:       status,
	}
	if err := h.Users.UpdateProfile(ctx, id, upd); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating user", err, "A database error occurred.", "/users")
		return
	}

	if warning, errMsg := h.updateEmail(ctx, r, user.Email, email, id); errMsg != "" {
		renderForm(errMsg, "")
		return
	} else if warning != "" {
		renderForm("", warning)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.UsersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// updateEmail applies an email change: the staff record first, then the
// privileged-first identity chain. An identity failure after the directory
// write is the partial state the warning reports; the directory is never
// rolled back. An error message means the change was rejected before
// anything was written.
func (h *Handler) updateEmail(ctx context.Context, r *http.Request, oldEmail, newEmail, targetID string) (warning, errMsg string) {
	if normalize.Email(newEmail) == normalize.Email(oldEmail) {
		return "", ""
	}

	// Reject directory duplicates before writing anything.
	exists, err := h.Users.EmailExistsForOther(ctx, newEmail, targetID)
	if err != nil {
		h.Log.Error("directory email lookup failed", zap.Error(err), zap.String("user_id", targetID))
		return "", "Unable to update the email right now."
	}
	if exists {
		return "", "That email already belongs to another staff member."
	}

	if err := h.Users.UpdateEmail(ctx, targetID, newEmail); err != nil {
		h.Log.Error("directory email update failed", zap.Error(err), zap.String("user_id", targetID))
		return "", "Unable to update the email right now."
	}

	// The directory now carries the new email. Anything the identity
	// provider rejects from here on leaves the two records out of sync,
	// which the warning surfaces.
	_, _, actorID, _ := authz.UserCtx(r)
	err = h.Identity.UpdateEmail(ctx, actorID, targetID, newEmail)
	switch {
	case err == nil:
		return "", ""
	case errors.Is(err, identity.ErrUserNotFound):
		h.Log.Warn("email change for record without identity account",
			zap.String("user_id", targetID))
		return "The staff record was updated, but this user has no sign-in account to update.", ""
	case errors.Is(err, identity.ErrEmailInUse):
		return "The staff record was updated, but the sign-in email was not: that email already belongs to another account.", ""
	case errors.Is(err, identity.ErrInvalidEmail):
		return "The staff record was updated, but the sign-in system rejected the email as invalid.", ""
	case errors.Is(err, identity.ErrNotAuthorized):
		return "The staff record was updated, but you are not authorized to change the sign-in email.", ""
	default:
		h.Log.Error("identity email update failed after directory update",
			zap.Error(err),
			zap.String("user_id", targetID))
		return "The email was updated in the staff record, but not in the sign-in account. Re-save to retry.", ""
	}
}
