// Package web renders the server-side HTML pages of the application.
//
// Templates are embedded into the binary and parsed once at startup into a
// per-page cache, so rendering never touches the filesystem and a broken
// template fails construction instead of the first request.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/pamorimsa/project1-cs50w/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages lists every page template that is composed with the shared layout.
var pages = []string{
	"index.html",
	"book.html",
	"search.html",
	"register.html",
	"login.html",
	"notfound.html",
}

// Renderer holds the parsed template cache.
type Renderer struct {
	templates map[string]*template.Template
	logger    *logger.Logger
}

// NewRenderer parses all embedded page templates against the shared layout.
// Returns an error if any template fails to parse.
func NewRenderer(log *logger.Logger) (*Renderer, error) {
	cache := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", page, err)
		}
		cache[page] = tmpl
	}

	log.Debug().Int("pages", len(cache)).Msg("template cache built")

	return &Renderer{
		templates: cache,
		logger:    log,
	}, nil
}

// Render executes the named page template with the given data and writes the
// result with the given status code.
//
// The page is rendered into a buffer first so that a template execution
// failure produces a clean 500 response instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, name string, statusCode int, data any) {
	tmpl, ok := r.templates[name]
	if !ok {
		r.logger.Error().Str("template", name).Msg("unknown template requested")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.Err(err).Str("template", name).Msg("error executing template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}
