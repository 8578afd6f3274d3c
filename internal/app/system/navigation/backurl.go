// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/users", "/teams").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are subpath patterns to reject (e.g., "/edit",
	// "/delete", "/new"). These prevent redirect loops back to action pages.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks both the query parameter and form value for "return", validates
// the URL is safe (not an open redirect), optionally validates the prefix,
// and excludes specified subpaths to prevent redirect loops.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	if ret != "" {
		valid := true

		if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
			valid = false
		}

		for _, excluded := range opts.ExcludedSubpaths {
			if strings.Contains(ret, excluded) {
				valid = false
				break
			}
		}

		if valid {
			return ret
		}
	}

	return opts.Fallback
}

// Common back URL configurations for reuse across packages.
var (
	// UsersBackURL returns options for staff pages.
	UsersBackURL = BackURLOptions{
		AllowedPrefix:    "/users",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/users",
	}

	// DepartmentsBackURL returns options for department pages.
	DepartmentsBackURL = BackURLOptions{
		AllowedPrefix:    "/departments",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/departments",
	}

	// JobsBackURL returns options for job pages.
	JobsBackURL = BackURLOptions{
		AllowedPrefix:    "/jobs",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/jobs",
	}

	// RolesBackURL returns options for role pages.
	RolesBackURL = BackURLOptions{
		AllowedPrefix:    "/roles",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/roles",
	}

	// TeamsBackURL returns options for team pages.
	TeamsBackURL = BackURLOptions{
		AllowedPrefix:    "/teams",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/teams",
	}
)
