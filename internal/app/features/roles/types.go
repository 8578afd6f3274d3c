// internal/app/features/roles/types.go
package roles

import (
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// listItem is a single row in the roles list. Template marks a predefined
// role with no stored record behind it.
type listItem struct {
	ID          string
	Name        string
	Permissions int
	Members     int
	Template    bool
}

// listData is the view model for the roles list page.
type listData struct {
	viewdata.BaseVM

	Items []listItem
}

// newData is the view model for the "New Role" page. Permissions holds the
// textarea content, one permission label per line.
type newData struct {
	formutil.Base

	Name        string
	Description string
	Permissions string
}

// editData is the view model for the "Edit Role" page.
type editData struct {
	formutil.Base

	ID          string
	Name        string
	Description string
	Permissions string
}

// viewData is the view model for the role detail page.
type viewData struct {
	viewdata.BaseVM

	ID          string
	Name        string
	Description string
	Permissions []string
	Members     []string
}

// deleteData is the view model for the delete confirmation page.
type deleteData struct {
	viewdata.BaseVM

	ID      string
	Name    string
	Members int
}
