package ports

import "context"

// SessionService defines the primary port for admin authentication. There is
// one shared password and no user identities; a session is just an opaque
// token with a TTL.
type SessionService interface {
	// Login verifies the password and mints a session token.
	Login(ctx context.Context, password string) (string, error)
	// Logout invalidates the token.
	Logout(ctx context.Context, token string) error
	// Validate reports whether the token belongs to a live session.
	Validate(ctx context.Context, token string) bool
}
