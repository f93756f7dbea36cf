package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSearchField(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  SearchField
		ok    bool
	}{
		{name: "title token", token: "book", want: SearchByTitle, ok: true},
		{name: "author token", token: "author", want: SearchByAuthor, ok: true},
		{name: "isbn token", token: "isbn", want: SearchByISBN, ok: true},
		{name: "uppercase token", token: "BOOK", want: SearchByTitle, ok: true},
		{name: "mixed case token", token: "IsBn", want: SearchByISBN, ok: true},
		{name: "unknown token", token: "publisher", want: "", ok: false},
		{name: "empty token", token: "", want: "", ok: false},
		{name: "title is not a token", token: "title", want: "", ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := ParseSearchField(test.token)

			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestSearchQueryPattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "plain term", term: "hobbit", want: "%hobbit%"},
		{name: "term is lowercased", term: "HOBBIT", want: "%hobbit%"},
		{name: "empty term matches everything", term: "", want: "%%"},
		{name: "inner spaces survive", term: "The Hobbit", want: "%the hobbit%"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query := SearchQuery{Field: SearchByTitle, Term: test.term}

			assert.Equal(t, test.want, query.Pattern())
		})
	}
}

func TestSearchQueryDisplayTerm(t *testing.T) {
	query := SearchQuery{Field: SearchByTitle, Term: "HOBBIT"}

	assert.Equal(t, "hobbit", query.DisplayTerm())
}
