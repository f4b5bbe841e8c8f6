// Package auth verifies the session cookie issued by the login flow and
// hands the rest of the service a verified (userId, roles) identity.
// Everything past this boundary trusts the identity and nothing else.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is a verified caller.
type Identity struct {
	UID   string
	Roles []string
}

type contextKey struct{}

// WithIdentity returns a context carrying the verified identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the verified identity, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// SessionClaims is the claim set carried by the session cookie.
type SessionClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// VerifySessionToken parses and validates an HS256 session token and
// returns the identity it asserts.
func VerifySessionToken(secret []byte, token string) (Identity, error) {
	var claims SessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Identity{}, fmt.Errorf("failed to verify session token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return Identity{}, fmt.Errorf("session token carries no subject")
	}

	return Identity{UID: claims.Subject, Roles: claims.Roles}, nil
}
