// Package auth attaches session claims to requests and guards the routes
// that need a signed-in user.
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	resp "meetup/internal/lib/api/response"
	"meetup/internal/lib/logger/sl"
	"meetup/internal/lib/session"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenVerifier
type TokenVerifier interface {
	Verify(token string) (session.Claims, error)
}

type Middleware struct {
	log       *slog.Logger
	verifier  TokenVerifier
	loginPath string
}

func New(log *slog.Logger, verifier TokenVerifier, loginPath string) *Middleware {
	return &Middleware{
		log:       log.With(slog.String("component", "middleware/auth")),
		verifier:  verifier,
		loginPath: loginPath,
	}
}

// Optional attaches claims when the request carries a valid token and lets
// anonymous or badly authenticated requests through untouched.
func (m *Middleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, err := m.claims(r); err == nil {
			r = r.WithContext(session.WithClaims(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

// Require rejects requests without a valid session. Browsers are redirected
// to the login page, JSON clients get 401.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.claims(r)
		if err != nil {
			if !errors.Is(err, errNoToken) {
				m.log.Debug("rejected session token",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err),
				)
			}
			m.unauthorized(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithClaims(r.Context(), claims)))
	})
}

var errNoToken = errors.New("no session token")

func (m *Middleware) claims(r *http.Request) (session.Claims, error) {
	token := tokenFromRequest(r)
	if token == "" {
		return session.Claims{}, errNoToken
	}
	return m.verifier.Verify(token)
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}

	if c, err := r.Cookie(session.AccessTokenCookie); err == nil {
		return c.Value
	}

	return ""
}

func (m *Middleware) unauthorized(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, resp.Error("authentication required"))
		return
	}

	target := m.loginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
