// internal/app/features/profile/types.go
package profile

import (
	"html/template"

	"github.com/toonworks/studiohub/internal/app/system/formutil"
)

// profileData is the view model for the profile page. The affiliation
// fields are read-only; staff assignments change through the admin
// console, not self-service.
type profileData struct {
	formutil.Base

	FirstName string
	LastName  string
	Email     string

	JobName        string
	DepartmentName string
	RoleName       string

	Warning template.HTML
	Success bool
}
