package service

import (
	"github.com/pamorimsa/project1-cs50w/internal/config"
	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/store"
)

type Services struct {
	CatalogService CatalogService
	AuthService    AuthService
}

func NewServices(storages *store.Storages, ratings RatingProvider, cfg config.Session, logger *logger.Logger) *Services {
	return &Services{
		CatalogService: NewCatalogService(storages.BookRepository, ratings, logger),
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
	}
}
