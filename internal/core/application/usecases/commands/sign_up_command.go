package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Password bounds. bcrypt ignores everything past 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New("SignUpCommand must be created via NewSignUpCommand constructor")
)

// SignUpCommand registers a new account with the identity provider.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

func NewSignUpCommand(email, password string) (SignUpCommand, error) {
	address, emailErr := kernel.NewEmail(email)

	var passwordErr error
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		passwordErr = errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, MaxPasswordLength)
	}

	if err := errors.Join(emailErr, passwordErr); err != nil {
		return SignUpCommand{}, err
	}

	return SignUpCommand{
		email:    address,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

func (c SignUpCommand) Email() kernel.Email {
	return c.email
}

func (c SignUpCommand) Password() string {
	return c.password
}
