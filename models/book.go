package models

// Book represents a single catalog entry joined with its author.
// Book rows are loaded by an external import process; this application
// only ever reads them.
type Book struct {
	// ISBN is the unique catalog identifier of the book.
	ISBN string `json:"isbn"`

	// Title is the book's title as stored in the catalog.
	Title string `json:"title"`

	// Author is the resolved author name from the authors table.
	Author string `json:"author"`

	// Year is the publication year.
	Year int `json:"year"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookDetail bundles a catalog entry with its externally sourced rating
// for the detail page.
type BookDetail struct {
	Book
	Rating Rating
}
