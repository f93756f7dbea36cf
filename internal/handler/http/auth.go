package http

import (
	"errors"
	"net/http"

	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/service"
	"github.com/pamorimsa/project1-cs50w/internal/store"
	"github.com/pamorimsa/project1-cs50w/internal/web"
)

// sessionCookieName is the cookie carrying the signed session token issued
// at login.
const sessionCookieName = "session"

const missingCredentialsMessage = "Username and password are both required."

// registerForm renders an empty registration form.
func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "register.html", http.StatusOK, web.RegisterPage{})
}

// register handles a registration submission.
//
// Missing fields re-render the form with a validation message instead of
// failing. A username already registered under case-insensitive comparison
// re-renders the form with the taken flag and the submitted username
// pre-filled; no store mutation occurs in that case.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid registration form submitted")
		h.renderer.Render(w, "register.html", http.StatusBadRequest, web.RegisterPage{Message: missingCredentialsMessage})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.services.AuthService.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.renderer.Render(w, "register.html", http.StatusBadRequest, web.RegisterPage{
				Message:  missingCredentialsMessage,
				Username: username,
			})
			return
		case errors.Is(err, store.ErrUsernameTaken):
			h.renderer.Render(w, "register.html", http.StatusOK, web.RegisterPage{
				UsernameTaken: true,
				Username:      username,
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.renderer.Render(w, "index.html", http.StatusOK, nil)
}

// loginForm renders an empty login form.
func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "login.html", http.StatusOK, web.LoginPage{})
}

// login handles a login submission.
//
// An unknown username and a wrong password are surfaced as two distinct form
// flags; nothing else about the failure is leaked. On success a signed
// session cookie is set and the landing page is rendered.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form submitted")
		h.renderer.Render(w, "login.html", http.StatusBadRequest, web.LoginPage{Message: missingCredentialsMessage})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.renderer.Render(w, "login.html", http.StatusBadRequest, web.LoginPage{
				Message:  missingCredentialsMessage,
				Username: username,
			})
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			h.renderer.Render(w, "login.html", http.StatusOK, web.LoginPage{
				UserNotFound: true,
				Username:     username,
			})
			return
		case errors.Is(err, service.ErrWrongPassword):
			h.renderer.Render(w, "login.html", http.StatusOK, web.LoginPage{
				WrongPassword: true,
				Username:      username,
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateSession(ctx, user)
	if err != nil {
		// The login itself succeeded; a session failure degrades to a
		// cookie-less landing page.
		log.Err(err).Int64("id", user.UserID).Msg("creation of session token failed")
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token.SignedString,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	h.renderer.Render(w, "index.html", http.StatusOK, nil)
}
