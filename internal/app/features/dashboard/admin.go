// internal/app/features/dashboard/admin.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	metricsstore "github.com/toonworks/studiohub/internal/app/store/metrics"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "Admin Dashboard", "/")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	counts := metricsstore.FetchDashboardCounts(ctx, h.DB)

	data := dashboardWithCounts{
		baseDashboardData: baseDashboardData{BaseVM: base},
		UsersCount:        counts.Users,
		OnlineCount:       counts.Online,
		DepartmentsCount:  counts.Departments,
		JobsCount:         counts.Jobs,
		RolesCount:        counts.Roles,
		TeamsCount:        counts.Teams,
	}

	h.Log.Debug("admin dashboard served", zap.String("user", base.UserName))

	templates.Render(w, r, "admin_dashboard", data)
}
