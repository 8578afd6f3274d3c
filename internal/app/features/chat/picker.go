// internal/app/features/chat/picker.go
package chat

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// ServePicker renders the department picker: the same merged view the
// departments console shows, so every unit with staff has a room even
// when no stored record exists.
func (h *Handler) ServePicker(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing users", err, "A database error occurred.", "/dashboard")
		return
	}
	merged, err := h.Departments.ListMerged(ctx, users)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing departments", err, "A database error occurred.", "/dashboard")
		return
	}

	resolve := func(u models.User) string {
		return affiliation.DepartmentName(u, merged)
	}

	items := make([]pickerItem, 0, len(merged))
	for _, d := range merged {
		items = append(items, pickerItem{
			ID:      d.ID,
			Name:    d.Name,
			Members: affiliation.CountMembers(d.Name, users, resolve),
		})
	}

	data := pickerData{
		BaseVM: viewdata.NewBaseVM(r, "Team Chat", "/dashboard"),
		Items:  items,
	}

	templates.Render(w, r, "chat_picker", data)
}
