package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestStoreOpaqueToken(t *testing.T) {
	s := NewStore()
	if s.Active() {
		t.Error("empty store reports active")
	}

	s.SetToken("opaque-credential")
	if got := s.Token(); got != "opaque-credential" {
		t.Errorf("Token() = %q", got)
	}
	if !s.ExpiresAt().IsZero() {
		t.Errorf("opaque token has expiry %v, want unknown", s.ExpiresAt())
	}
	if !s.Active() {
		t.Error("stored opaque token reports inactive")
	}
}

func TestStoreJWTExpiry(t *testing.T) {
	s := NewStore()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s.SetToken(signedToken(t, exp))
	if !s.ExpiresAt().Equal(exp) {
		t.Errorf("ExpiresAt() = %v, want %v", s.ExpiresAt(), exp)
	}
	if !s.Active() {
		t.Error("unexpired credential reports inactive")
	}

	s.SetToken(signedToken(t, time.Now().Add(-time.Minute)))
	if s.Active() {
		t.Error("expired credential reports active")
	}
	if s.Token() == "" {
		t.Error("expired credential should still be stored, the backend decides")
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.SetToken(signedToken(t, time.Now().Add(time.Hour)))

	s.Clear()
	if s.Token() != "" || s.Active() || !s.ExpiresAt().IsZero() {
		t.Error("Clear left credential state behind")
	}
}
