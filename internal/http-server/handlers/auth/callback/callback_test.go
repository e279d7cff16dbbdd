package callback

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetup/internal/http-server/handlers/auth/callback/mocks"
	"meetup/internal/lib/logger/handlers/slogdiscard"
	"meetup/internal/lib/session"
)

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCallbackHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Exchanges code and redirects to next", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewCodeExchanger(t)
		m.On("ExchangeCode", mock.Anything, "abc", "verifier-1").
			Return(session.Tokens{AccessToken: "access", RefreshToken: "refresh"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&next=/protected/events", nil)
		req.AddCookie(&http.Cookie{Name: session.CodeVerifierCookie, Value: "verifier-1"})

		rr := httptest.NewRecorder()
		New(logger, m, true).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/protected/events", rr.Header().Get("Location"))

		cookies := rr.Result().Cookies()

		access := cookieByName(cookies, session.AccessTokenCookie)
		require.NotNil(t, access)
		assert.Equal(t, "access", access.Value)
		assert.True(t, access.HttpOnly)
		assert.True(t, access.Secure)

		refresh := cookieByName(cookies, session.RefreshTokenCookie)
		require.NotNil(t, refresh)
		assert.Equal(t, "refresh", refresh.Value)

		verifier := cookieByName(cookies, session.CodeVerifierCookie)
		require.NotNil(t, verifier)
		assert.Equal(t, -1, verifier.MaxAge)
	})

	t.Run("Missing code", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewCodeExchanger(t)

		req := httptest.NewRequest(http.MethodGet, "/auth/callback", nil)
		rr := httptest.NewRecorder()
		New(logger, m, false).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/auth/error?error=No+code+provided", rr.Header().Get("Location"))
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("Exchange failure", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewCodeExchanger(t)
		m.On("ExchangeCode", mock.Anything, "expired", "").
			Return(session.Tokens{}, errors.New("invalid grant"))

		req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=expired", nil)
		rr := httptest.NewRecorder()
		New(logger, m, false).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/auth/error?error=Could+not+sign+you+in", rr.Header().Get("Location"))
		assert.Nil(t, cookieByName(rr.Result().Cookies(), session.AccessTokenCookie))
	})

	t.Run("Exchange failure forwards provider reason", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewCodeExchanger(t)
		m.On("ExchangeCode", mock.Anything, "reused", "").
			Return(session.Tokens{}, &session.ExchangeError{
				Reason: "invalid flow state, no valid flow state found",
				Err:    errors.New("response status code 404"),
			})

		req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=reused", nil)
		rr := httptest.NewRecorder()
		New(logger, m, false).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t,
			"/auth/error?error=invalid+flow+state%2C+no+valid+flow+state+found",
			rr.Header().Get("Location"))
	})
}

func TestSafeNext(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                         "/",
		"/":                        "/",
		"/events/V1StGXR8":         "/events/V1StGXR8",
		"/protected/events?tab=1":  "/protected/events?tab=1",
		"https://evil.example.com": "/",
		"//evil.example.com":       "/",
		"/\\evil.example.com":      "/",
		"javascript:alert(1)":      "/",
		"relative/path":            "/",
	}

	for in, want := range cases {
		assert.Equal(t, want, safeNext(in), in)
	}
}
