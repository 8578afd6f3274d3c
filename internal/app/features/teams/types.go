// internal/app/features/teams/types.go
package teams

import (
	"github.com/toonworks/studiohub/internal/app/system/formutil"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// listItem is a single row in the teams list.
type listItem struct {
	ID          string
	Name        string
	TypeName    string
	CheckerName string
	Members     int
}

// typeOption is a dropdown entry for the team type (department) select.
type typeOption struct {
	ID   string
	Name string
}

// listData is the view model for the teams list page, including the
// header stat cards.
type listData struct {
	viewdata.BaseVM

	Type  string
	Types []typeOption

	Total       int
	Active      int
	UniqueTypes int

	Items []listItem
}

// userOption is a dropdown entry for checker and member selects.
type userOption struct {
	ID   string
	Name string
}

// formData is the shared view model for the new and edit forms.
type formData struct {
	formutil.Base

	ID            string
	Name          string
	Description   string
	Type          string
	Checker       string
	BackupChecker string
	Members       []string

	Types []typeOption
	Users []userOption
}

// IsMember reports whether the given user id is in the selected member
// set, for re-rendering the multi-select.
func (d formData) IsMember(id string) bool {
	for _, m := range d.Members {
		if m == id {
			return true
		}
	}
	return false
}

// viewData is the view model for the team detail page.
type viewData struct {
	viewdata.BaseVM

	ID                string
	Name              string
	Description       string
	TypeName          string
	CheckerName       string
	BackupCheckerName string
	MemberNames       []string
}

// deleteData is the view model for the delete confirmation page.
type deleteData struct {
	viewdata.BaseVM

	ID      string
	Name    string
	Members int
}
