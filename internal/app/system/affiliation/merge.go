// internal/app/system/affiliation/merge.go
package affiliation

import (
	"sort"

	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// MergeDepartments builds the complete department listing: every stored
// unit, plus a synthetic unit for each department name that exists only as
// free text on user records. Units are keyed by normalized name, stored
// units first, first seen wins — so merging the same snapshot twice adds
// nothing.
//
// Synthetic units use the name as their id, carry no manager, and cannot be
// assigned one until promoted to a stored record by an explicit create.
// The result is sorted by normalized name for stable rendering.
func MergeDepartments(stored []models.Department, users []models.User) []models.Department {
	seen := make(map[string]struct{}, len(stored))
	out := make([]models.Department, 0, len(stored))

	for _, d := range stored {
		key := normalize.Key(d.Name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}

	for _, u := range users {
		name := DepartmentName(u, stored)
		key := normalize.Key(name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, models.Department{ID: name, Name: name})
	}

	sort.Slice(out, func(i, j int) bool {
		return normalize.Key(out[i].Name) < normalize.Key(out[j].Name)
	})
	return out
}

// MergeJobs unions the fixed default job titles with stored jobs, keyed by
// id, first seen wins (stored entries first, so persisted jobs shadow
// defaults on key collisions).
func MergeJobs(stored []models.Job) []models.Job {
	seen := make(map[string]struct{}, len(stored)+len(defaultJobs))
	out := make([]models.Job, 0, len(stored)+len(defaultJobs))
	for _, j := range stored {
		if _, ok := seen[j.ID]; ok {
			continue
		}
		seen[j.ID] = struct{}{}
		out = append(out, j)
	}
	for _, j := range defaultJobs {
		if _, ok := seen[j.ID]; ok {
			continue
		}
		seen[j.ID] = struct{}{}
		out = append(out, j)
	}
	return out
}

// defaultJobs is the fixed fallback list always present in job pickers and
// listings, whether or not anything was ever persisted.
var defaultJobs = []models.Job{
	{ID: "artist", Name: "Artist"},
	{ID: "director", Name: "Director"},
	{ID: "supervisor", Name: "Supervisor"},
	{ID: "animator", Name: "Animator"},
	{ID: "cleanup_artist", Name: "Cleanup Artist"},
	{ID: "in_betweener", Name: "In-Betweener"},
	{ID: "colorist", Name: "Colorist"},
	{ID: "checker", Name: "Checker"},
	{ID: "storyboard_artist", Name: "Storyboard Artist"},
	{ID: "background_artist", Name: "Background Artist"},
	{ID: "compositor", Name: "Compositor"},
	{ID: "admin", Name: "Administrator"},
	{ID: "hr", Name: "HR Staff"},
	{ID: "finance", Name: "Finance Staff"},
	{ID: "manager", Name: "Manager"},
}

// DefaultJobs returns a copy of the fixed fallback job list.
func DefaultJobs() []models.Job {
	out := make([]models.Job, len(defaultJobs))
	copy(out, defaultJobs)
	return out
}
