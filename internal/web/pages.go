package web

import "github.com/pamorimsa/project1-cs50w/models"

// BookPage is the view model for the book detail page.
type BookPage struct {
	ISBN   string
	Title  string
	Author string
	Year   int

	// Rating is the display value for the rating slot: a numeric average
	// or the "Unavailable" sentinel.
	Rating string
}

// SearchPage is the view model for the search results page. A nil or empty
// Books slice switches the template into its no-results mode, displaying
// Term instead.
type SearchPage struct {
	Books []models.Book
	Term  string
}

// RegisterPage is the view model for the registration form.
type RegisterPage struct {
	// UsernameTaken marks the submitted username as already registered.
	UsernameTaken bool

	// Message carries a validation message (e.g. missing fields).
	Message string

	// Username pre-fills the form with the previously submitted value.
	Username string
}

// LoginPage is the view model for the login form.
type LoginPage struct {
	// UserNotFound marks the submitted username as unknown.
	UserNotFound bool

	// WrongPassword marks the submitted password as not matching.
	WrongPassword bool

	// Message carries a validation message (e.g. missing fields).
	Message string

	// Username pre-fills the form with the previously submitted value.
	Username string
}

// NotFoundPage is the view model for the catalog not-found page.
type NotFoundPage struct {
	ISBN string
}
