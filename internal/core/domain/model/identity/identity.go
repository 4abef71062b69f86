// Package identity models who is acting: the authenticated Identity passed into
// every lifecycle call, and the User account the identity provider keeps.
package identity

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Identity is an authenticated caller. It is threaded explicitly into every
// operation instead of being read from ambient session state.
type Identity struct {
	id    kernel.UUID
	email kernel.Email

	guard guard.ConstructorGuard
}

func NewIdentity(id kernel.UUID, email kernel.Email) (Identity, error) {
	if err := errors.Join(id.Validate(), email.Validate()); err != nil {
		return Identity{}, err
	}

	return Identity{
		id:    id,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (i Identity) Validate() error {
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

func (i Identity) ID() kernel.UUID {
	return i.id
}

func (i Identity) Email() kernel.Email {
	return i.email
}
