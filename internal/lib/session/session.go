// Package session carries the authenticated user through a request and
// verifies the access tokens issued by Supabase auth.
package session

import (
	"context"
	"time"
)

// Cookie names shared with the browser client.
const (
	AccessTokenCookie  = "sb-access-token"
	RefreshTokenCookie = "sb-refresh-token"
	CodeVerifierCookie = "sb-code-verifier"
)

type Claims struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}

type ctxKey struct{}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

func FromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(Claims)
	if !ok || c.Subject == "" {
		return Claims{}, false
	}
	return c, true
}

// Subject returns the user id of the signed-in user, or "" for anonymous requests.
func Subject(ctx context.Context) string {
	c, _ := FromContext(ctx)
	return c.Subject
}
