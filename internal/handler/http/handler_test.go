package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/service"
	"github.com/pamorimsa/project1-cs50w/internal/web"
	"github.com/pamorimsa/project1-cs50w/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockCatalogService implements service.CatalogService for unit tests.
// Each method field can be overridden per test case.
type mockCatalogService struct {
	bookByISBNFn func(ctx context.Context, isbn string) (models.Book, error)
	bookDetailFn func(ctx context.Context, isbn string) (models.BookDetail, error)
	searchFn     func(ctx context.Context, query models.SearchQuery) ([]models.Book, error)
}

func (m *mockCatalogService) BookByISBN(ctx context.Context, isbn string) (models.Book, error) {
	return m.bookByISBNFn(ctx, isbn)
}

func (m *mockCatalogService) BookDetail(ctx context.Context, isbn string) (models.BookDetail, error) {
	return m.bookDetailFn(ctx, isbn)
}

func (m *mockCatalogService) Search(ctx context.Context, query models.SearchQuery) ([]models.Book, error) {
	return m.searchFn(ctx, query)
}

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	registerFn      func(ctx context.Context, username, password string) (models.User, error)
	loginFn         func(ctx context.Context, username, password string) (models.User, error)
	createSessionFn func(ctx context.Context, user models.User) (models.Token, error)
	parseSessionFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	return m.createSessionFn(ctx, user)
}

func (m *mockAuthService) ParseSession(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseSessionFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full chi router over a Handler wired with the
// given service mocks and a real template renderer.
func newTestRouter(t *testing.T, catalog service.CatalogService, auth service.AuthService) http.Handler {
	t.Helper()

	renderer, err := web.NewRenderer(logger.Nop())
	require.NoError(t, err)

	h := NewHandler(&service.Services{
		CatalogService: catalog,
		AuthService:    auth,
	}, renderer, logger.Nop())

	return h.Init()
}

// postForm performs a form-encoded POST against the router and returns the
// response recorder.
func postForm(t *testing.T, router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// get performs a GET against the router and returns the response recorder.
func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// hobbit is a convenience fixture used across multiple tests.
var hobbit = models.Book{
	ISBN:   "0618260307",
	Title:  "The Hobbit",
	Author: "J.R.R. Tolkien",
	Year:   1937,
}
