// internal/app/features/dashboard/common.go
package dashboard

import (
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// baseDashboardData contains fields common to all dashboard views.
type baseDashboardData struct {
	viewdata.BaseVM
}

// dashboardWithCounts extends baseDashboardData with entity counts
// for the admin dashboard.
type dashboardWithCounts struct {
	baseDashboardData
	UsersCount       int64
	OnlineCount      int64
	DepartmentsCount int64
	JobsCount        int64
	RolesCount       int64
	TeamsCount       int64
}
