// internal/app/features/users/view.go
package users

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// ServeView renders the staff detail page with affiliations resolved.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
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

	data := viewData{
		BaseVM:         viewdata.NewBaseVM(r, user.FullName(), "/users"),
		User:           *user,
		Name:           user.FullName(),
		JobName:        affiliation.JobName(*user, refs.Jobs),
		DepartmentName: affiliation.DepartmentName(*user, refs.Departments),
		RoleName:       affiliation.RoleName(*user, refs.Roles),
		Online:         affiliation.UserOnline(*user, time.Now()),
	}

	templates.Render(w, r, "user_view", data)
}
