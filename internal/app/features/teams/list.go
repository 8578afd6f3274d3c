// internal/app/features/teams/list.go
package teams

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	teamstore "github.com/toonworks/studiohub/internal/app/store/teams"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// ServeList renders the teams list with its stat cards, optionally
// filtered by type (department id) through the ?type= query parameter.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	teamType := query.Get(r, "type")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	teams, err := h.Teams.List(ctx, teamType)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing teams", err, "A database error occurred.", "/dashboard/admin")
		return
	}

	rd, err := h.loadRefData(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading team references", err, "A database error occurred.", "/dashboard/admin")
		return
	}

	// The stat cards always describe the full set, not the filtered view.
	all := teams
	if teamType != "" {
		if all, err = h.Teams.List(ctx, ""); err != nil {
			h.ErrLog.LogServerError(w, r, "database error listing teams", err, "A database error occurred.", "/dashboard/admin")
			return
		}
	}
	stats := teamstore.ComputeStats(all)

	items := make([]listItem, 0, len(teams))
	for _, t := range teams {
		items = append(items, listItem{
			ID:          t.ID,
			Name:        t.Name,
			TypeName:    rd.typeName(t.Type),
			CheckerName: rd.userName(t.Checker),
			Members:     len(t.Members),
		})
	}

	data := listData{
		BaseVM:      viewdata.NewBaseVM(r, "Teams", "/dashboard/admin"),
		Type:        teamType,
		Types:       rd.typeOptions(),
		Total:       stats.Total,
		Active:      stats.Active,
		UniqueTypes: stats.UniqueTypes,
		Items:       items,
	}

	templates.Render(w, r, "teams_list", data)
}
