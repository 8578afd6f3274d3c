// internal/app/features/users/delete.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ServeDelete renders the delete confirmation page.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Staff member not found.", "/users")
		return
	}

	data := deleteData{
		BaseVM: viewdata.NewBaseVM(r, "Delete Staff", "/users"),
		ID:     user.ID,
		Name:   user.FullName(),
		Email:  user.Email,
	}

	templates.Render(w, r, "user_delete", data)
}

// HandleDelete removes the staff record. The identity account is left in
// place; sign-in without a staff record is rejected at login.
// Authorization: RequireCategory("admin") middleware in routes.go.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Users.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting user", err, "A database error occurred.", "/users")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "Staff member not found.", "/users")
		return
	}

	h.Log.Info("staff record deleted", zap.String("user_id", id))
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}
