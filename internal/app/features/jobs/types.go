// internal/app/features/jobs/types.go
package jobs

import (
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// listItem is a single row in the jobs list. Builtin marks a default
// entry with no stored record behind it.
type listItem struct {
	ID      string
	Name    string
	Members int
	Builtin bool
}

// listData is the view model for the jobs list page.
type listData struct {
	viewdata.BaseVM

	Items []listItem
}

// newData is the view model for the "New Job" page.
type newData struct {
	formutil.Base

	Name string
}

// editData is the view model for the "Edit Job" page.
type editData struct {
	formutil.Base

	ID   string
	Name string
}

// deleteData is the view model for the delete confirmation page.
type deleteData struct {
	viewdata.BaseVM

	ID      string
	Name    string
	Members int
	Builtin bool
}
