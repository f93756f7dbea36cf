package store

import (
	"github.com/pamorimsa/project1-cs50w/internal/logger"
)

// Storages groups every repository backed by the relational store.
type Storages struct {
	BookRepository BookRepository
	UserRepository UserRepository
}

// NewStorages wires all repositories onto the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		BookRepository: NewBookRepository(db, logger),
		UserRepository: NewUserRepository(db, logger),
	}
}
