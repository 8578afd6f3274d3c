// internal/app/features/dashboard/artist.go
package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	jobstore "github.com/toonworks/studiohub/internal/app/store/jobs"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/authz"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type artistData struct {
	baseDashboardData
	JobName        string
	DepartmentName string
}

// ServeArtist renders the artist console: the signed-in artist's resolved
// job and department, with links into the department chat.
func (h *Handler) ServeArtist(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "Artist Dashboard", "/")
	_, _, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := artistData{
		baseDashboardData: baseDashboardData{BaseVM: base},
	}

	user, err := userstore.New(h.DB).GetByID(ctx, userID)
	switch {
	case errors.Is(err, userstore.ErrNotFound):
		// Session outlived the staff record. Render the bare view.
	case err != nil:
		h.Log.Error("load user for artist dashboard failed", zap.Error(err), zap.String("user_id", userID))
	default:
		jobs, _ := jobstore.New(h.DB).ListWithDefaults(ctx)
		departments, _ := departmentstore.New(h.DB).List(ctx)
		data.JobName = affiliation.JobName(*user, jobs)
		data.DepartmentName = affiliation.DepartmentName(*user, departments)
	}

	templates.Render(w, r, "artist_dashboard", data)
}
