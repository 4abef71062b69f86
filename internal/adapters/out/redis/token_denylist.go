// Package redis keeps the sign-out denylist: token ids revoked before their expiry.
package redis

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shipping:revoked:"

// TokenDenylist implements ports.TokenDenylist. Entries expire together with
// the token, so the set never outgrows the live sessions.
type TokenDenylist struct {
	client *redis.Client
	clock  ports.Clock
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewTokenDenylist(client *redis.Client, clock ports.Clock) *TokenDenylist {
	return &TokenDenylist{client: client, clock: clock}
}

// Revoke is a no-op for a token that has already expired.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return errors.New("token id is required")
	}

	ttl := until.Sub(d.clock.Now())
	if ttl <= 0 {
		return nil
	}

	return d.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Ping reports whether redis is reachable.
func (d *TokenDenylist) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
