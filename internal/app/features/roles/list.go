// internal/app/features/roles/list.go
package roles

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	rolestore "github.com/toonworks/studiohub/internal/app/store/roles"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// ServeList renders the roles list: stored roles merged with the
// predefined templates, each with its permission and member counts.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stored, err := h.Roles.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing roles", err, "A database error occurred.", "/dashboard/admin")
		return
	}
	merged := rolestore.MergeTemplates(stored)

	users, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing users", err, "A database error occurred.", "/dashboard/admin")
		return
	}
	counts := memberCounts(users, merged)

	storedKeys := make(map[string]struct{}, len(stored))
	for _, rl := range stored {
		storedKeys[rl.NameKey] = struct{}{}
	}

	items := make([]listItem, 0, len(merged))
	for _, rl := range merged {
		key := rl.NameKey
		if key == "" {
			key = normalize.Key(rl.Name)
		}
		_, isStored := storedKeys[key]
		items = append(items, listItem{
			ID:          rl.ID,
			Name:        rl.Name,
			Permissions: len(rl.Permissions),
			Members:     counts[key],
			Template:    !isStored,
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Roles", "/dashboard/admin"),
		Items:  items,
	}

	templates.Render(w, r, "roles_list", data)
}

// memberCounts tallies how many staff resolve to each role, keyed by
// normalized role name. A user with several role candidates counts toward
// each of them.
func memberCounts(users []models.User, merged []models.Role) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		seen := make(map[string]struct{})
		for _, c := range affiliation.RoleCandidates(u, merged) {
			key := normalize.Key(c)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			counts[key]++
		}
	}
	return counts
}
