package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The backend signs and verifies its own tokens; the portal only inspects
// claims locally to avoid round-trips that are guaranteed to fail.

// ExpiresAt returns the token's expiry claim. ok is false when the token
// cannot be parsed or carries no expiry.
func ExpiresAt(tokenString string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsExpired reports whether the token has an expiry claim in the past.
// Unparseable tokens count as expired; tokens without an expiry do not.
func IsExpired(tokenString string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(time.Now())
}
