package http

import (
	"net/http"

	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/rs/zerolog"
)

// withSession annotates the request-scoped logger with the account carried by
// a valid session cookie. Requests without a cookie, or with an expired or
// tampered token, proceed anonymously; the session is never a gate.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.AuthService.ParseSession(r.Context(), cookie.Value)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("session cookie rejected")
			next.ServeHTTP(w, r)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		next.ServeHTTP(w, r)
	})
}
