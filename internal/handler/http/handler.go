package http

import (
	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/service"
	"github.com/pamorimsa/project1-cs50w/internal/web"
)

type Handler struct {
	services *service.Services
	renderer *web.Renderer

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer *web.Renderer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		renderer: renderer,
		logger:   logger,
	}
}
