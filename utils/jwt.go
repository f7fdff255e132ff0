package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenClaims is what the gateway reads from a backend-issued bearer token.
// The signature is not checked here; the backend remains the authority and
// every forwarded request is verified there.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// ErrTokenExpired is returned when the token's exp claim is already in the past.
var ErrTokenExpired = errors.New("token has expired")

// InspectToken extracts subject, role and expiry from a JWT without verifying it.
// Opaque (non-JWT) tokens yield zero claims and no error.
func InspectToken(tokenString string, now time.Time) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return TokenClaims{}, nil
	}

	var out TokenClaims
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
		if !out.ExpiresAt.After(now) {
			return out, ErrTokenExpired
		}
	}
	return out, nil
}
