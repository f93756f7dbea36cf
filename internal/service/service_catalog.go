package service

import (
	"context"
	"fmt"

	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/store"
	"github.com/pamorimsa/project1-cs50w/models"
)

// catalogService is the concrete implementation of CatalogService.
// It combines read-only catalog lookups with the external rating
// collaborator.
type catalogService struct {
	bookRepository store.BookRepository
	ratings        RatingProvider
	logger         *logger.Logger
}

// NewCatalogService constructs a CatalogService wired to the given book
// repository and rating provider.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCatalogService(bookRepository store.BookRepository, ratings RatingProvider, logger *logger.Logger) CatalogService {
	return &catalogService{
		bookRepository: bookRepository,
		ratings:        ratings,
		logger:         logger,
	}
}

// BookByISBN looks up a single catalog entry by its identifier.
//
// Returns the book or a wrapped storage error (see [store.ErrBookNotFound]).
func (c *catalogService) BookByISBN(ctx context.Context, isbn string) (models.Book, error) {
	book, err := c.bookRepository.FindBookByISBN(ctx, isbn)
	if err != nil {
		return models.Book{}, fmt.Errorf("book lookup by isbn failed: %w", err)
	}

	return book, nil
}

// BookDetail looks up a catalog entry and merges in its external rating.
//
// A missing book fails the lookup (wrapped [store.ErrBookNotFound]). A
// failing rating collaborator does not: the error is logged at warn level
// and the detail carries an unavailable rating instead.
func (c *catalogService) BookDetail(ctx context.Context, isbn string) (models.BookDetail, error) {
	log := logger.FromContext(ctx)

	book, err := c.bookRepository.FindBookByISBN(ctx, isbn)
	if err != nil {
		return models.BookDetail{}, fmt.Errorf("book lookup by isbn failed: %w", err)
	}

	rating, err := c.ratings.AverageRating(ctx, isbn)
	if err != nil {
		log.Warn().Err(err).Str("isbn", isbn).Msg("rating lookup unavailable, degrading to sentinel")
		rating = models.Rating{}
	}

	return models.BookDetail{Book: book, Rating: rating}, nil
}

// Search returns every catalog entry matching the query's case-insensitive
// substring criterion. A zero-row result is returned as an empty slice, not
// an error.
func (c *catalogService) Search(ctx context.Context, query models.SearchQuery) ([]models.Book, error) {
	books, err := c.bookRepository.SearchBooks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	return books, nil
}
