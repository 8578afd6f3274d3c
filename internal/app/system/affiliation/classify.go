// internal/app/system/affiliation/classify.go
package affiliation

import "strings"

// Category is the coarse routing bucket a role set collapses to. The
// console defines dozens of named roles ("CHECKER - KA", "SUPERVISOR - TP",
// ...) that must all route to one of three dashboards, so classification
// uses substring containment over normalized candidates, not equality.
type Category string

const (
	CategoryArtist Category = "artist"
	CategoryAdmin  Category = "admin"
	CategoryOther  Category = "other"
)

// Classify maps a normalized candidate set to its routing category.
//
// The artist check runs first and wins even when another candidate would
// match admin: an artist misconfigured with an extra admin-sounding role
// must never be routed to the admin console.
func Classify(candidates []string) Category {
	for _, c := range candidates {
		if strings.Contains(c, "artist") {
			return CategoryArtist
		}
	}
	for _, c := range candidates {
		if strings.Contains(c, "administrator") || strings.Contains(c, "admin") {
			return CategoryAdmin
		}
	}
	return CategoryOther
}

// DashboardPath returns the dashboard route for a category.
func DashboardPath(c Category) string {
	switch c {
	case CategoryArtist:
		return "/dashboard/artist"
	case CategoryAdmin:
		return "/dashboard/admin"
	default:
		return "/dashboard"
	}
}
