package callback

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"meetup/internal/lib/logger/sl"
	"meetup/internal/lib/session"
)

const (
	errorPath      = "/auth/error"
	defaultFailMsg = "Could not sign you in"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CodeExchanger
type CodeExchanger interface {
	ExchangeCode(ctx context.Context, code, verifier string) (session.Tokens, error)
}

// New finishes the PKCE sign-in started by the browser client: it trades the
// code for a session, stores the tokens in cookies and sends the user back to
// next.
func New(log *slog.Logger, exchanger CodeExchanger, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.callback.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		code := r.URL.Query().Get("code")
		if code == "" {
			log.Info("callback without code")
			redirectError(w, r, "No code provided")
			return
		}

		var verifier string
		if c, err := r.Cookie(session.CodeVerifierCookie); err == nil {
			verifier = c.Value
		}

		tokens, err := exchanger.ExchangeCode(r.Context(), code, verifier)
		if err != nil {
			log.Error("failed to exchange code", sl.Err(err))
			redirectError(w, r, failureMessage(err))
			return
		}

		setCookie(w, session.AccessTokenCookie, tokens.AccessToken, secureCookies)
		if tokens.RefreshToken != "" {
			setCookie(w, session.RefreshTokenCookie, tokens.RefreshToken, secureCookies)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     session.CodeVerifierCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		next := safeNext(r.URL.Query().Get("next"))

		log.Info("signed in", slog.String("next", next))

		http.Redirect(w, r, next, http.StatusSeeOther)
	}
}

func setCookie(w http.ResponseWriter, name, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// failureMessage forwards the provider's reason when there is one.
func failureMessage(err error) string {
	var xerr *session.ExchangeError
	if errors.As(err, &xerr) && xerr.Reason != "" {
		return xerr.Reason
	}

	return defaultFailMsg
}

func redirectError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, errorPath+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

// safeNext keeps redirects on this site. Anything that is not a plain local
// path falls back to the root.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}

	return next
}
