package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)
	router.Use(middleware.Recoverer)

	router.Get("/", h.home)
	router.Get("/books/{isbn}", h.bookDetail)
	router.Post("/search", h.search)

	router.Get("/register", h.registerForm)
	router.Post("/register", h.register)
	router.Get("/login", h.loginForm)
	router.Post("/login", h.login)

	router.Get("/api/{isbn}", h.bookJSON)

	return router
}
