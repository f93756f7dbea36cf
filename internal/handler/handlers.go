package handler

import (
	"github.com/pamorimsa/project1-cs50w/internal/handler/http"
	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/service"
	"github.com/pamorimsa/project1-cs50w/internal/web"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, renderer *web.Renderer, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, renderer, logger),
	}
}
