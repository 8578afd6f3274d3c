// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

// ServeDashboard dispatches to the category-specific view. Visiting the
// bare /dashboard with an artist or admin session redirects to the right
// console instead of rendering the generic view.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	category, _, _, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	switch affiliation.Category(category) {
	case affiliation.CategoryArtist:
		http.Redirect(w, r, "/dashboard/artist", http.StatusSeeOther)
	case affiliation.CategoryAdmin:
		http.Redirect(w, r, "/dashboard/admin", http.StatusSeeOther)
	default:
		h.ServeGeneral(w, r)
	}
}
