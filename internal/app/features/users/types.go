// internal/app/features/users/types.go
package users

import (
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
)

// listItem is a single row in the staff list with affiliations resolved
// to display names.
type listItem struct {
	ID             string
	Name           string
	Email          string
	EmployeeID     string
	JobName        string
	DepartmentName string
	RoleName       string
	Status         string
	Online         bool
}

// listData is the view model for the staff list page.
type listData struct {
	viewdata.BaseVM

	Q          string
	OnlineOnly bool
	Items      []listItem
	Total      int
}

// option is a dropdown entry for the job, department, and role selects.
type option struct {
	ID   string
	Name string
}

// formOptions carries the reference dropdowns shared by the new and edit
// forms.
type formOptions struct {
	Jobs        []option
	Departments []option
	Roles       []option
}

// newData is the view model for the "Add Staff" page.
type newData struct {
	formutil.Base
	formOptions

	FirstName    string
	LastName     string
	Email        string
	EmployeeID   string
	JobID        string
	DepartmentID string
	RoleID       string
	Status       string
}

// editData is the view model for the "Edit Staff" page.
type editData struct {
	formutil.Base
	formOptions

	ID           string
	FirstName    string
	LastName     string
	Email        string
	EmployeeID   string
	JobID        string
	DepartmentID string
	RoleID       string
	Status       string

	// Warning is a non-fatal notice shown after a partial email update.
	Warning string
}

// viewData is the view model for the staff detail page.
type viewData struct {
	viewdata.BaseVM

	User           models.User
	Name           string
	JobName        string
	DepartmentName string
	RoleName       string
	Online         bool
}

// deleteData is the view model for the delete confirmation page.
type deleteData struct {
	viewdata.BaseVM

	ID    string
	Name  string
	Email string
}
