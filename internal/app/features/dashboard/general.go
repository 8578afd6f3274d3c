// internal/app/features/dashboard/general.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ServeGeneral renders the fallback dashboard for users whose roles map
// to neither the artist nor the admin console.
func (h *Handler) ServeGeneral(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "Dashboard", "/")
	data := baseDashboardData{
		BaseVM: base,
	}

	h.Log.Debug("general dashboard served", zap.String("user", base.UserName))

	templates.Render(w, r, "general_dashboard", data)
}
