package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pamorimsa/project1-cs50w/models"
)

const (
	getBookByISBN = `SELECT isbn, title, authors.author, year
    FROM books
    JOIN authors ON books.author_id = authors.id
    WHERE isbn = $1;`

	createUser = `INSERT INTO users (username, password)
    VALUES ($1, $2)
    RETURNING id, username, password, created_at;`

	findUserByUsername = `SELECT id, username, password, created_at
    FROM users
    WHERE LOWER(username) = LOWER($1);`
)

// searchColumns is the closed allow-list mapping a search field to the SQL
// column it targets. Column names are never taken from user input; anything
// outside this map is rejected with [ErrUnknownSearchField].
var searchColumns = map[models.SearchField]string{
	models.SearchByTitle:  "title",
	models.SearchByAuthor: "authors.author",
	models.SearchByISBN:   "isbn",
}

// buildSearchQuery builds the parameterised catalog search statement for the
// given query. The term is matched as a lowercased substring on both sides,
// so an empty term matches every row.
func buildSearchQuery(query models.SearchQuery) (string, []any, error) {
	column, ok := searchColumns[query.Field]
	if !ok {
		return "", nil, ErrUnknownSearchField
	}

	return sq.Select("isbn", "title", "authors.author", "year").
		From("books").
		Join("authors ON books.author_id = authors.id").
		Where("LOWER("+column+") LIKE ?", query.Pattern()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
