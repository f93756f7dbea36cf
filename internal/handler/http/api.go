package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/store"
	"github.com/pamorimsa/project1-cs50w/internal/utils"
)

// isbnNotFoundBody is the exact plain-text body returned when the requested
// identifier is not in the catalog. Both the wording and the trailing
// newline are part of the observable contract.
const isbnNotFoundBody = "ERROR (404): ISBN not found\n"

// bookResponse is the JSON payload of the machine-readable lookup endpoint.
// Field order and naming are part of the observable contract.
type bookResponse struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	ISBN   string `json:"isbn"`
}

// bookJSON serves the machine-readable catalog lookup.
func (h *Handler) bookJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	isbn := chi.URLParam(r, "isbn")

	book, err := h.services.CatalogService.BookByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, isbnNotFoundBody)
			return
		}

		log.Err(err).Str("isbn", isbn).Msg("unexpected error occurred during book lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, bookResponse{
		Title:  book.Title,
		Author: book.Author,
		Year:   book.Year,
		ISBN:   book.ISBN,
	}, http.StatusOK)
}
