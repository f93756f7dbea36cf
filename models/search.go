package models

import "strings"

// SearchField identifies which catalog column a search targets.
// Only the three values defined below are ever accepted; the store layer
// keys its column allow-list on this type.
type SearchField string

const (
	SearchByTitle  SearchField = "book"
	SearchByAuthor SearchField = "author"
	SearchByISBN   SearchField = "isbn"
)

// ParseSearchField maps a raw form token to a SearchField.
// Matching is case-insensitive. The second return value reports whether the
// token is one of the recognised values.
func ParseSearchField(token string) (SearchField, bool) {
	switch SearchField(strings.ToLower(token)) {
	case SearchByTitle:
		return SearchByTitle, true
	case SearchByAuthor:
		return SearchByAuthor, true
	case SearchByISBN:
		return SearchByISBN, true
	default:
		return "", false
	}
}

// SearchQuery is a transient, per-request search criterion: a target field
// paired with a free-text term matched as a case-insensitive substring.
type SearchQuery struct {
	Field SearchField
	Term  string
}

// Pattern returns the lowercased LIKE pattern for the term, wrapped in
// wildcards on both sides. An empty term yields "%%", which matches all rows.
func (q SearchQuery) Pattern() string {
	return "%" + strings.ToLower(q.Term) + "%"
}

// DisplayTerm returns the term as shown on the no-results page: the pattern
// with its leading and trailing wildcard characters stripped.
func (q SearchQuery) DisplayTerm() string {
	return strings.Trim(q.Pattern(), "%")
}
