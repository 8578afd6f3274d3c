// internal/app/system/affiliation/counts.go
package affiliation

import (
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// CountMembers counts users whose resolved unit name equals unitName under
// normalized comparison. The resolve function must be the same one used to
// render per-row affiliations, or counts silently diverge from what is
// shown — that consistency is the one invariant this package exists to
// keep.
func CountMembers(unitName string, users []models.User, resolve func(models.User) string) int {
	key := normalize.Key(unitName)
	if key == "" {
		return 0
	}
	n := 0
	for _, u := range users {
		if normalize.Key(resolve(u)) == key {
			n++
		}
	}
	return n
}
