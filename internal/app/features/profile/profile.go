// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/identity"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/authz"
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/inputval"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

// profileInput defines validation rules for the profile form.
type profileInput struct {
	FirstName string `validate:"required,max=100" label:"First name"`
	LastName  string `validate:"required,max=100" label:"Last name"`
	Email     string `validate:"required,email" label:"Email"`
}

// ServeProfile renders the signed-in user's own record with affiliations
// resolved to display names.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Your staff record could not be found.", "/")
		return
	}

	data := h.profileView(ctx, *user)
	formutil.SetBase(&data.Base, r, "My Profile", "/dashboard")
	data.Success = r.URL.Query().Get("saved") == "1"

	templates.Render(w, r, "profile", data)
}

// HandleUpdate processes the profile form POST: display name through both
// the directory and the identity provider, and an email change that writes
// the staff record before the identity provider.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/profile")
		return
	}

	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/")
		return
	}

	first := strings.TrimSpace(r.FormValue("first_name"))
	last := strings.TrimSpace(r.FormValue("last_name"))
	email := strings.TrimSpace(r.FormValue("email"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Your staff record could not be found.", "/")
		return
	}

	renderForm := func(errMsg, warning string) {
		data := h.profileView(ctx, *user)
		data.FirstName = first
		data.LastName = last
		data.Email = email
		data.Warning = template.HTML(warning)
		formutil.SetBase(&data.Base, r, "My Profile", "/dashboard")
		if errMsg != "" {
			data.SetError(errMsg)
		}
		templates.Render(w, r, "profile", data)
	}

	input := profileInput{FirstName: first, LastName: last, Email: email}
	if result := inputval.Validate(input); result.HasErrors() {
		renderForm(result.First(), "")
		return
	}

	// Affiliations are not self-service; carry the existing values through.
	upd := userstore.Update{
		FirstName:    first,
		LastName:     last,
		EmployeeID:   user.EmployeeID,
		JobID:        user.JobID,
		JobTitle:     user.JobTitle,
		DepartmentID: user.DepartmentID,
		Department:   user.Department,
		RoleID:       user.RoleID,
		Role:         user.Role,
		Status:       user.Status,
	}
	if err := h.Users.UpdateProfile(ctx, uid, upd); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating profile", err, "A database error occurred.", "/profile")
		return
	}

	name := models.User{FirstName: first, LastName: last}.FullName()
	if err := h.Identity.UpdateDisplayName(ctx, uid, name); err != nil && !errors.Is(err, identity.ErrUserNotFound) {
		h.Log.Warn("identity display name update failed",
			zap.Error(err),
			zap.String("user_id", uid))
	}

	if warning, errMsg := h.updateEmail(ctx, uid, user.Email, email); errMsg != "" {
		renderForm(errMsg, "")
		return
	} else if warning != "" {
		renderForm("", warning)
		return
	}

	http.Redirect(w, r, "/profile?saved=1", http.StatusSeeOther)
}

// profileView builds the read-only view of a staff record, resolving the
// affiliation fields against fresh reference snapshots. Lookup failures
// degrade to the unresolved marker rather than failing the page.
func (h *Handler) profileView(ctx context.Context, user models.User) profileData {
	data := profileData{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}

	jobs, err := h.Jobs.ListWithDefaults(ctx)
	if err != nil {
		jobs = affiliation.DefaultJobs()
	}
	data.JobName = affiliation.JobName(user, jobs)

	if depts, err := h.Departments.List(ctx); err == nil {
		data.DepartmentName = affiliation.DepartmentName(user, depts)
	} else {
		data.DepartmentName = affiliation.DepartmentName(user, nil)
	}

	if roles, err := h.Roles.ListWithTemplates(ctx); err == nil {
		data.RoleName = affiliation.RoleName(user, roles)
	} else {
		data.RoleName = affiliation.RoleName(user, nil)
	}

	return data
}

// updateEmail applies a self-service email change: the staff record first,
// then the privileged-first identity chain, with the same partial-failure
// reporting as the admin console. The directory is never rolled back.
func (h *Handler) updateEmail(ctx context.Context, uid, oldEmail, newEmail string) (warning, errMsg string) {
	if normalize.Email(newEmail) == normalize.Email(oldEmail) {
		return "", ""
	}

	// Reject directory duplicates before writing anything.
	exists, err := h.Users.EmailExistsForOther(ctx, newEmail, uid)
	if err != nil {
		h.Log.Error("directory email lookup failed", zap.Error(err), zap.String("user_id", uid))
		return "", "Unable to update the email right now."
	}
	if exists {
		return "", "That email already belongs to another staff member."
	}

	if err := h.Users.UpdateEmail(ctx, uid, newEmail); err != nil {
		h.Log.Error("directory email update failed", zap.Error(err), zap.String("user_id", uid))
		return "", "Unable to update the email right now."
	}

	// The directory now carries the new email. Anything the identity
	// provider rejects from here on leaves the two records out of sync,
	// which the warning surfaces.
	err = h.Identity.UpdateEmail(ctx, uid, uid, newEmail)
	switch {
	case err == nil:
		return "", ""
	case errors.Is(err, identity.ErrUserNotFound):
		h.Log.Warn("email change for record without identity account",
			zap.String("user_id", uid))
		return "Your staff record was updated, but no sign-in account exists to update.", ""
	case errors.Is(err, identity.ErrEmailInUse):
		return "Your staff record was updated, but the sign-in email was not: that email already belongs to another account.", ""
	case errors.Is(err, identity.ErrInvalidEmail):
		return "Your staff record was updated, but the sign-in system rejected the email as invalid.", ""
	case errors.Is(err, identity.ErrNotAuthorized):
		return "Your staff record was updated, but you are not authorized to change the sign-in email.", ""
	default:
		h.Log.Error("identity email update failed after directory update",
			zap.Error(err),
			zap.String("user_id", uid))
		return "The email was updated in your staff record, but not in the sign-in account. Re-save to retry.", ""
	}
}
