package service

import (
	"context"

	"github.com/pamorimsa/project1-cs50w/models"
)

type CatalogService interface {
	// BookByISBN returns the catalog entry for the given identifier.
	BookByISBN(ctx context.Context, isbn string) (models.Book, error)

	// BookDetail returns the catalog entry together with its external
	// rating. Collaborator failures degrade the rating to its unavailable
	// state; they never fail the lookup itself.
	BookDetail(ctx context.Context, isbn string) (models.BookDetail, error)

	// Search returns every catalog entry matching the query.
	Search(ctx context.Context, query models.SearchQuery) ([]models.Book, error)
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateSession(ctx context.Context, user models.User) (models.Token, error)
	ParseSession(ctx context.Context, tokenString string) (models.Token, error)
}

// RatingProvider is the external rating lookup collaborator.
// Implementations must treat every failure mode (network error, bad status,
// malformed payload) as an error return so callers can degrade gracefully.
type RatingProvider interface {
	AverageRating(ctx context.Context, isbn string) (models.Rating, error)
}
