// Package formutil provides helpers for form re-rendering with validation
// errors.
//
// When a form submission fails validation, the form should be re-rendered
// with the user's previously entered values echoed back, an error message,
// and the context data the form needs (dropdowns, etc.). Base carries the
// common fields; embed it in the form's data struct.
//
// Example usage:
//
//	type newUserData struct {
//	    formutil.Base
//	    FirstName string
//	    Email     string
//	}
//
//	data := newUserData{FirstName: first, Email: email}
//	formutil.SetBase(&data.Base, r, "Add Staff", "/users")
//	data.SetError("Email is required.")
//	templates.Render(w, r, "user_new", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"github.com/toonworks/studiohub/internal/app/system/authz"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form
// data structs.
type Base struct {
	SiteName    string
	Title       string
	IsLoggedIn  bool
	Category    string
	UserName    string
	BackURL     string
	CurrentPath string
	CSRFToken   string
	Error       template.HTML
}

// SetBase populates the common Base fields from the request context.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	category, uname, _, _ := authz.UserCtx(r)
	b.SiteName = viewdata.SiteName
	b.Title = title
	b.IsLoggedIn = true
	b.Category = category
	b.UserName = uname
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
	b.CSRFToken = csrf.Token(r)
}

// SetError sets the error message on a Base struct.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}
