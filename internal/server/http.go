package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pamorimsa/project1-cs50w/internal/config"
	"github.com/pamorimsa/project1-cs50w/internal/logger"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(mux http.Handler, cfg config.Server, log *logger.Logger) *httpServer {
	log.Info().Str("address", cfg.HTTPAddress).Msg("creating HTTP server")

	return &httpServer{
		server: &http.Server{
			Addr:        cfg.HTTPAddress,
			Handler:     http.TimeoutHandler(mux, cfg.RequestTimeout, http.StatusText(http.StatusServiceUnavailable)),
			ReadTimeout: cfg.RequestTimeout,
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); h.server != nil && err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
