package commands

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrSignOutCommandIsNotConstructed = errors.New("SignOutCommand must be created via NewSignOutCommand constructor")
)

// SignOutCommand ends the session of one token.
type SignOutCommand struct { //nolint:recvcheck //using for validation
	tokenID   string
	expiresAt time.Time

	guard guard.ConstructorGuard
}

func NewSignOutCommand(tokenID string, expiresAt time.Time) (SignOutCommand, error) {
	var idErr, expiresErr error
	if tokenID == "" {
		idErr = errs.NewValueIsRequiredError("token id")
	}
	if expiresAt.IsZero() {
		expiresErr = errs.NewValueIsRequiredError("token expiry")
	}

	if err := errors.Join(idErr, expiresErr); err != nil {
		return SignOutCommand{}, err
	}

	return SignOutCommand{
		tokenID:   tokenID,
		expiresAt: expiresAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SignOutCommand) Validate() error {
	return c.guard.Validate(ErrSignOutCommandIsNotConstructed)
}

func (c SignOutCommand) TokenID() string {
	return c.tokenID
}

func (c SignOutCommand) ExpiresAt() time.Time {
	return c.expiresAt
}
