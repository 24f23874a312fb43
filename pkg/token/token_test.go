package token_test

import (
	"testing"
	"time"

	"medibook-portal/pkg/token"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})

	got, ok := token.ExpiresAt(raw)
	if !ok {
		t.Fatal("expected an expiry")
	}
	if !got.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
}

func TestIsExpired(t *testing.T) {
	future := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	past := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	noExpiry := signedToken(t, jwt.MapClaims{"sub": "4"})

	if token.IsExpired(future) {
		t.Error("a future expiry is not expired")
	}
	if !token.IsExpired(past) {
		t.Error("a past expiry is expired")
	}
	if token.IsExpired(noExpiry) {
		t.Error("a token without expiry never expires locally")
	}
	if !token.IsExpired("garbage") {
		t.Error("an unparseable token counts as expired")
	}
}
