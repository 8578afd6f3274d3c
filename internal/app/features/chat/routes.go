// internal/app/features/chat/routes.go
package chat

import (
	"github.com/go-chi/chi/v5"
	"github.com/toonworks/studiohub/internal/app/system/auth"
)

// Routes mounts all chat routes under the base path (typically "/chat"
// from bootstrap). Any signed-in category may chat.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServePicker)
		pr.Get("/{id}", h.ServeRoom)
		pr.Post("/{id}/messages", h.HandlePost)
		pr.Get("/{id}/stream", h.ServeStream)
	})

	return r
}
