// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/toonworks/studiohub/internal/app/system/auth"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	render(w, r, "Sign in required", "Please sign in to continue.", backURL)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	if msg == "" {
		msg = "You don't have permission to view this page."
	}
	render(w, r, "Access denied", msg, backURL)
}

// RenderBadRequest shows a friendly "bad request" page with a message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	if msg == "" {
		msg = "The request could not be processed."
	}
	w.WriteHeader(http.StatusBadRequest)
	render(w, r, "Bad request", msg, backURL)
}

// RenderNotFound shows a friendly "not found" page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	if msg == "" {
		msg = "The page you were looking for doesn't exist."
	}
	w.WriteHeader(http.StatusNotFound)
	render(w, r, "Not found", msg, backURL)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	w.WriteHeader(http.StatusInternalServerError)
	render(w, r, "Something went wrong", msg, backURL)
}

func render(w http.ResponseWriter, r *http.Request, title, msg, backURL string) {
	u, signed := auth.CurrentUser(r)
	category, name := "", ""
	if signed && u != nil {
		category, name = u.Category, u.Name
	}

	data := pageData{
		Title:      title,
		IsLoggedIn: signed,
		Category:   category,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}

	templates.Render(w, r, "error_page", data)
}
