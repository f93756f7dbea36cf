package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// The catalog is read-only from this application's perspective: rows are
// loaded by an external import process and only ever queried here.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// FindBookByISBN retrieves a single catalog entry joined with its author,
// filtered by exact ISBN match.
//
// Error handling:
//   - sql.ErrNoRows → [ErrBookNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *bookRepository) FindBookByISBN(ctx context.Context, isbn string) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, getBookByISBN, isbn)

	if err := row.Scan(&book.ISBN, &book.Title, &book.Author, &book.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.FindBookByISBN").Msg("error: scanning error")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return book, nil
}

// SearchBooks returns every catalog entry whose target column contains the
// query term as a case-insensitive substring. An empty result set is not an
// error; callers render a no-results page instead.
//
// Error handling:
//   - Field outside the allow-list → [ErrUnknownSearchField].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *bookRepository) SearchBooks(ctx context.Context, query models.SearchQuery) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	statement, args, err := buildSearchQuery(query)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, statement, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.SearchBooks").Msg("error executing search query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ISBN, &book.Title, &book.Author, &book.Year); err != nil {
			log.Err(err).Str("func", "*bookRepository.SearchBooks").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.SearchBooks").Msg("error iterating search rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return books, nil
}
