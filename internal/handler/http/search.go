package http

import (
	"net/http"

	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/web"
	"github.com/pamorimsa/project1-cs50w/models"
)

// searchErrorBody is the plain-text body returned for an unrecognised
// searchby token. This is the one user-facing error path with no store
// access.
const searchErrorBody = "An error has occurred"

// search handles the catalog search form.
//
// The searchby token is resolved against the closed allow-list before any
// query is built; unknown tokens fail immediately with a plain-text error.
// Matching is a case-insensitive substring match, so an empty search term
// matches every row.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid search form submitted")
		http.Error(w, searchErrorBody, http.StatusBadRequest)
		return
	}

	field, ok := models.ParseSearchField(r.PostFormValue("searchby"))
	if !ok {
		log.Warn().Str("searchby", r.PostFormValue("searchby")).Msg("unrecognised searchby token")
		http.Error(w, searchErrorBody, http.StatusBadRequest)
		return
	}

	query := models.SearchQuery{
		Field: field,
		Term:  r.PostFormValue("searchfor"),
	}

	books, err := h.services.CatalogService.Search(ctx, query)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during catalog search")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, "search.html", http.StatusOK, web.SearchPage{
		Books: books,
		Term:  query.DisplayTerm(),
	})
}
