// internal/app/features/chat/post.go
package chat

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	chatstore "github.com/toonworks/studiohub/internal/app/store/chat"
	"github.com/toonworks/studiohub/internal/app/system/auth"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// HandlePost accepts a new chat message for a department. The store
// sanitizes the body and rejects messages that are empty afterwards; the
// room just re-renders in that case, nothing to report.
func (h *Handler) HandlePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/chat")
		return
	}

	deptID := chi.URLParam(r, "id")

	me, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/chat")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msg := models.ChatMessage{
		SenderID:     me.ID,
		SenderName:   me.Name,
		DepartmentID: deptID,
		Recipients:   r.Form["recipients"],
		Body:         r.FormValue("body"),
	}
	if _, err := h.Chat.Insert(ctx, msg); err != nil && err != chatstore.ErrEmptyBody {
		h.ErrLog.LogServerError(w, r, "database error inserting chat message", err, "A database error occurred.", "/chat/"+deptID)
		return
	}

	http.Redirect(w, r, "/chat/"+deptID, http.StatusSeeOther)
}
