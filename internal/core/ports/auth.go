package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/identity"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// Token is a signed session token handed out on sign-in.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// TokenClaims is what a verified token says about its bearer.
type TokenClaims struct {
	TokenID   string
	Identity  identity.Identity
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(who identity.Identity) (Token, error)

	// Parse verifies signature and expiry.
	Parse(token string) (TokenClaims, error)
}

// TokenDenylist remembers tokens that were signed out before they expired.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Clock supplies the current time to handlers.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
