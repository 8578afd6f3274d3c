// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/toonworks/studiohub/internal/app/system/auth"
)

// UserCtx returns the user's routing category (lowercased), display name,
// user id, and a found flag. With no user in context it returns
// "visitor", "", "", false.
func UserCtx(r *http.Request) (category string, name string, userID string, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", "", false
	}
	return strings.ToLower(u.Category), u.Name, u.ID, true
}

// IsAdmin reports whether the current request's user routes to the admin
// console.
func IsAdmin(r *http.Request) bool {
	cat, _, _, ok := UserCtx(r)
	return ok && cat == "admin"
}

// IsArtist reports whether the current request's user routes to the artist
// dashboard.
func IsArtist(r *http.Request) bool {
	cat, _, _, ok := UserCtx(r)
	return ok && cat == "artist"
}

// IsSelf reports whether the current request's user is the given user id.
// Used to gate self-service paths (e.g. changing one's own email).
func IsSelf(r *http.Request, userID string) bool {
	_, _, id, ok := UserCtx(r)
	return ok && userID != "" && id == userID
}
