package identity

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an account registered with the identity provider.
// The password is only ever held as a hash.
type User struct {
	id           kernel.UUID
	email        kernel.Email
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an account. passwordHash must already be hashed by a ports.PasswordHasher.
func NewUser(id kernel.UUID, email kernel.Email, passwordHash string, createdAt time.Time) (*User, error) {
	var hashErr, createdAtErr error
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("password hash")
	}
	if createdAt.IsZero() {
		createdAtErr = errs.NewValueIsRequiredError("created at")
	}

	if err := errors.Join(id.Validate(), email.Validate(), hashErr, createdAtErr); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() kernel.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Identity returns the acting identity of this user.
func (u *User) Identity() Identity {
	return Identity{id: u.id, email: u.email, guard: guard.NewConstructorGuard()}
}
