package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"globex-logistics/internal/core/cache"

	"github.com/google/uuid"
)

// ErrInvalidPassword is returned when the supplied password does not match.
var ErrInvalidPassword = errors.New("invalid password")

const sessionKeyPrefix = "admin_session:"

// SessionServiceImpl implements ports.SessionService backed by the cache.
type SessionServiceImpl struct {
	password []byte
	ttl      time.Duration
	cache    cache.Cache
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(password string, ttl time.Duration, c cache.Cache) *SessionServiceImpl {
	return &SessionServiceImpl{
		password: []byte(password),
		ttl:      ttl,
		cache:    c,
	}
}

// Login verifies the shared password and stores a fresh session token with
// the configured TTL.
func (s *SessionServiceImpl) Login(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare(s.password, []byte(password)) != 1 {
		return "", ErrInvalidPassword
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, []byte("1"), s.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Logout drops the session token.
func (s *SessionServiceImpl) Logout(ctx context.Context, token string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("failed to drop session: %w", err)
	}
	return nil
}

// Validate reports whether the token is a live session. Expired and unknown
// tokens are both invalid; a cache outage denies access rather than letting
// requests through.
func (s *SessionServiceImpl) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	_, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	return err == nil
}
