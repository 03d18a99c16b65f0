package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds the bearer credential used for backend requests. It is set on
// login, cleared on logout, and read by the transport layer on every request.
// A missing credential is not an error here; the backend rejects the call.
type Store struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// SetToken stores the credential. When the token is a JWT its exp claim is
// recorded so callers can tell an expired session apart from a missing one.
// The signature is not checked, the backend is authoritative for that.
func (s *Store) SetToken(token string) {
	var expiresAt time.Time

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err == nil {
		if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
			expiresAt = exp.Time
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiresAt = expiresAt
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
}

// Active reports whether a credential is present and not known to be expired.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return false
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return false
	}
	return true
}

// ExpiresAt returns the credential expiry, zero when unknown (opaque token)
// or when no credential is stored.
func (s *Store) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}
