// internal/app/features/departments/types.go
package departments

import (
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// listItem is a single row in the departments list.
type listItem struct {
	ID          string
	Name        string
	ManagerName string
	Members     int
	Synthetic   bool
}

// listData is the view model for the departments list page.
type listData struct {
	viewdata.BaseVM

	Items []listItem
}

// managerOption is a dropdown entry for the manager select.
type managerOption struct {
	ID   string
	Name string
}

// newData is the view model for the "New Department" page.
type newData struct {
	formutil.Base

	Name        string
	Description string
	Manager     string

	Managers []managerOption
}

// editData is the view model for the "Edit Department" page.
type editData struct {
	formutil.Base

	ID          string
	Name        string
	Description string
	Manager     string

	Managers []managerOption
}

// deleteData is the view model for the delete confirmation page.
type deleteData struct {
	viewdata.BaseVM

	ID      string
	Name    string
	Members int
}
