package rolestore

import (
	"sort"
	"strings"

	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// MergeTemplates unions the stored roles with the predefined templates,
// keyed by normalized name, stored entries first so persisted edits shadow
// the template of the same name. The result is sorted by normalized name.
func MergeTemplates(stored []models.Role) []models.Role {
	templates := Templates()
	seen := make(map[string]struct{}, len(stored)+len(templates))
	out := make([]models.Role, 0, len(stored)+len(templates))

	for _, r := range stored {
		key := normalize.Key(r.Name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	for _, r := range templates {
		key := normalize.Key(r.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return normalize.Key(out[i].Name) < normalize.Key(out[j].Name)
	})
	return out
}

// Templates returns the predefined role set. Template ids are slugs of the
// name; a template becomes a stored record only through an explicit create.
func Templates() []models.Role {
	out := make([]models.Role, 0, len(templateNames))
	for _, name := range templateNames {
		out = append(out, models.Role{
			ID:          normalize.PermissionKey(name),
			Name:        name,
			NameKey:     normalize.Key(name),
			Permissions: templatePermissions(name),
		})
	}
	return out
}

// Production units: KA = key animation, IB = in-between, BG = background,
// TP = touch-up/paint.
var templateNames = []string{
	"ADMINISTRATOR",
	"PCA - KA", "PCA - IB", "PCA - BG", "PCA - TP",
	"CHECKER - KA", "CHECKER - IB", "CHECKER - BG", "CHECKER - TP",
	"FINAL CHECKER - KA", "FINAL CHECKER - IB", "FINAL CHECKER - BG", "FINAL CHECKER - TP",
	"ARTIST - KA", "ARTIST - IB", "ARTIST - BG", "ARTIST - TP",
	"SUPERVISOR - KA", "SUPERVISOR - IB", "SUPERVISOR - BG", "SUPERVISOR - TP",
	"PAYROLL - KA", "PAYROLL - IB", "PAYROLL - BG", "PAYROLL - TP",
	"LEAD ANIMATOR",
	"SENIOR CHECKER",
	"PRODUCTION COORDINATOR",
	"TECHNICAL DIRECTOR",
}

func templatePermissions(name string) []string {
	switch {
	case name == "ADMINISTRATOR":
		return []string{"manage_users", "manage_departments", "manage_jobs", "manage_roles", "manage_teams"}
	case strings.Contains(name, "ARTIST") || name == "LEAD ANIMATOR":
		return []string{"view_tasks", "submit_work"}
	case strings.Contains(name, "CHECKER"):
		return []string{"view_tasks", "review_work"}
	case strings.Contains(name, "SUPERVISOR") || name == "PRODUCTION COORDINATOR" || name == "TECHNICAL DIRECTOR":
		return []string{"view_tasks", "review_work", "assign_work"}
	case strings.Contains(name, "PAYROLL"):
		return []string{"view_reports"}
	default:
		return []string{"view_tasks"}
	}
}
