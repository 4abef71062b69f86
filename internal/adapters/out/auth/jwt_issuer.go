package auth

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuerName = "shipping"

// ErrInvalidToken covers malformed, tampered and expired tokens alike.
var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies session tokens with a shared secret.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  ports.Clock
}

func NewJWTIssuer(secret string, ttl time.Duration, clock ports.Clock) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

// Issue returns a token whose subject is the user id.
func (i *JWTIssuer) Issue(who identity.Identity) (ports.Token, error) {
	if err := who.Validate(); err != nil {
		return ports.Token{}, err
	}

	now := i.clock.Now()
	tokenID := uuid.NewString()
	expiresAt := now.Add(i.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: who.Email().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   who.ID().String(),
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return ports.Token{}, err
	}

	return ports.Token{
		Value:     signed,
		ID:        tokenID,
		ExpiresAt: jwt.NewNumericDate(expiresAt).Time,
	}, nil
}

// Parse verifies signature, algorithm, issuer and expiry.
func (i *JWTIssuer) Parse(raw string) (ports.TokenClaims, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(raw, parsed, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if parsed.ID == "" {
		return ports.TokenClaims{}, fmt.Errorf("%w: missing token id", ErrInvalidToken)
	}

	id, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	email, err := kernel.NewEmail(parsed.Email)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	who, err := identity.NewIdentity(id, email)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return ports.TokenClaims{
		TokenID:   parsed.ID,
		Identity:  who,
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}
