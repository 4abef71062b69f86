package ports

import (
	"context"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for identity provider accounts.
type UserRepository interface {
	// Add persists a new user. An already registered e-mail yields errs.ValueIsInvalidError.
	Add(ctx context.Context, user *identity.User) error

	// Get retrieves a user by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// GetByEmail retrieves a user by exact e-mail, or errs.ObjectNotFoundError.
	GetByEmail(ctx context.Context, email kernel.Email) (*identity.User, error)
}
