package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

var ErrExchangeFailed = errors.New("code exchange failed")

const maxReasonLen = 200

// ExchangeError is a failed exchange. Reason is the provider's own message,
// cleaned up for display, and may be empty.
type ExchangeError struct {
	Reason string
	Err    error
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrExchangeFailed, e.Err)
}

func (e *ExchangeError) Unwrap() []error {
	return []error{ErrExchangeFailed, e.Err}
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// GoTrueExchanger trades a PKCE authorization code for a session.
type GoTrueExchanger struct {
	client *supabase.Client
}

func NewGoTrueExchanger(url, anonKey string) (*GoTrueExchanger, error) {
	const op = "session.NewGoTrueExchanger"

	client, err := supabase.NewClient(url, anonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &GoTrueExchanger{client: client}, nil
}

func (e *GoTrueExchanger) ExchangeCode(ctx context.Context, code, verifier string) (Tokens, error) {
	const op = "session.GoTrueExchanger.ExchangeCode"

	if err := ctx.Err(); err != nil {
		return Tokens{}, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := e.client.Auth.Token(types.TokenRequest{
		GrantType:    "pkce",
		Code:         code,
		CodeVerifier: verifier,
	})
	if err != nil {
		return Tokens{}, fmt.Errorf("%s: %w", op, &ExchangeError{Reason: providerReason(err.Error()), Err: err})
	}
	if resp == nil || resp.AccessToken == "" {
		return Tokens{}, fmt.Errorf("%s: %w", op, &ExchangeError{Err: errors.New("empty session")})
	}

	return Tokens{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// providerReason pulls the human readable message out of a GoTrue error,
// which embeds the JSON response body. Without one it returns "".
func providerReason(raw string) string {
	start := strings.Index(raw, "{")
	if start < 0 {
		return ""
	}

	var body struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
	}
	if err := json.NewDecoder(strings.NewReader(raw[start:])).Decode(&body); err != nil {
		return ""
	}

	for _, m := range []string{body.ErrorDescription, body.Msg, body.Message} {
		if m = sanitizeReason(m); m != "" {
			return m
		}
	}

	return ""
}

func sanitizeReason(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.Join(strings.Fields(s), " ")

	if r := []rune(s); len(r) > maxReasonLen {
		s = string(r[:maxReasonLen])
	}

	return s
}
