package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrSignInCommandIsNotConstructed = errors.New("SignInCommand must be created via NewSignInCommand constructor")
)

// SignInCommand exchanges credentials for a session token.
type SignInCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewSignInCommand only checks presence. The e-mail is not parsed so that a
// malformed address fails the same way as an unknown one.
func NewSignInCommand(email, password string) (SignInCommand, error) {
	var emailErr, passwordErr error
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}

	if err := errors.Join(emailErr, passwordErr); err != nil {
		return SignInCommand{}, err
	}

	return SignInCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

func (c SignInCommand) Email() string {
	return c.email
}

func (c SignInCommand) Password() string {
	return c.password
}
