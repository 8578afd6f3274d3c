// internal/app/features/chat/room.go
package chat

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/auth"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// ServeRoom renders a department chat room: the member roster with online
// markers and the recent message history.
func (h *Handler) ServeRoom(w http.ResponseWriter, r *http.Request) {
	deptID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing users", err, "A database error occurred.", "/chat")
		return
	}
	merged, err := h.Departments.ListMerged(ctx, users)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing departments", err, "A database error occurred.", "/chat")
		return
	}

	dept, ok := findDepartment(merged, deptID)
	if !ok {
		uierrors.RenderNotFound(w, r, "Department not found.", "/chat")
		return
	}

	now := time.Now()
	roster := make([]rosterItem, 0)
	for _, u := range departmentMembers(users, merged, dept) {
		roster = append(roster, rosterItem{
			ID:     u.ID,
			Name:   u.FullName(),
			Online: affiliation.UserOnline(u, now),
		})
	}

	history, err := h.Chat.ListByDepartment(ctx, dept.ID, historyLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading chat history", err, "A database error occurred.", "/chat")
		return
	}

	me, _ := auth.CurrentUser(r)
	messages := make([]messageItem, 0, len(history))
	for _, m := range history {
		messages = append(messages, messageItem{
			ID:         m.ID,
			SenderName: m.SenderName,
			Body:       m.Body,
			SentAt:     m.CreatedAt,
			Mine:       me != nil && m.SenderID == me.ID,
		})
	}

	data := roomData{
		BaseVM:         viewdata.NewBaseVM(r, dept.Name+" Chat", "/chat"),
		DepartmentID:   dept.ID,
		DepartmentName: dept.Name,
		Roster:         roster,
		Messages:       messages,
	}

	templates.Render(w, r, "chat_room", data)
}

// findDepartment locates a unit in the merged snapshot by id. Synthetic
// units carry their name as the id.
func findDepartment(merged []models.Department, id string) (models.Department, bool) {
	for _, d := range merged {
		if d.ID == id {
			return d, true
		}
	}
	return models.Department{}, false
}

// departmentMembers selects the users belonging to a unit: a direct
// department_id reference wins, with the resolved name (covering the
// legacy section field) as the fallback tier.
func departmentMembers(users []models.User, merged []models.Department, dept models.Department) []models.User {
	key := normalize.Key(dept.Name)
	var out []models.User
	for _, u := range users {
		if u.DepartmentID == dept.ID {
			out = append(out, u)
			continue
		}
		if normalize.Key(affiliation.DepartmentName(u, merged)) == key {
			out = append(out, u)
		}
	}
	return out
}
