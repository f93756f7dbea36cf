package store

import (
	"context"

	"github.com/pamorimsa/project1-cs50w/models"
)

type BookRepository interface {
	FindBookByISBN(ctx context.Context, isbn string) (models.Book, error)
	SearchBooks(ctx context.Context, query models.SearchQuery) ([]models.Book, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
