package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/store"
	"github.com/pamorimsa/project1-cs50w/internal/web"
)

// home renders the landing page. No parameters, no store access.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "index.html", http.StatusOK, nil)
}

// bookDetail renders the detail page for a single catalog entry.
//
// The identifier is taken from the path as-is; no format validation is
// performed before querying. An unknown identifier renders the not-found
// page with status 404. A failing rating collaborator never fails the page:
// the rating slot degrades to its sentinel value.
func (h *Handler) bookDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	isbn := chi.URLParam(r, "isbn")

	detail, err := h.services.CatalogService.BookDetail(ctx, isbn)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			h.renderer.Render(w, "notfound.html", http.StatusNotFound, web.NotFoundPage{ISBN: isbn})
			return
		}

		log.Err(err).Str("isbn", isbn).Msg("unexpected error occurred during book detail lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, "book.html", http.StatusOK, web.BookPage{
		ISBN:   detail.ISBN,
		Title:  detail.Title,
		Author: detail.Author,
		Year:   detail.Year,
		Rating: detail.Rating.Display(),
	})
}
