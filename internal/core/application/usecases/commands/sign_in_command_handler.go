package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for an unknown e-mail and a wrong password alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SignInCommandHandler verifies credentials and issues a token.
//
// Example:
//
//	who, token, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, commands.ErrInvalidCredentials) {
//	    return echo.ErrUnauthorized
//	}
type SignInCommandHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewSignInCommandHandler(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) SignInCommandHandler {
	return SignInCommandHandler{
		users:  users,
		hasher: hasher,
		issuer: issuer,
	}
}

func (h SignInCommandHandler) Handle(
	ctx context.Context,
	cmd SignInCommand,
) (identity.Identity, ports.Token, error) {
	if err := cmd.Validate(); err != nil {
		return identity.Identity{}, ports.Token{}, err
	}

	email, err := kernel.NewEmail(cmd.Email())
	if err != nil {
		return identity.Identity{}, ports.Token{}, ErrInvalidCredentials
	}

	user, err := h.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return identity.Identity{}, ports.Token{}, ErrInvalidCredentials
		}
		return identity.Identity{}, ports.Token{}, err
	}

	if err = h.hasher.Compare(user.PasswordHash(), cmd.Password()); err != nil {
		return identity.Identity{}, ports.Token{}, ErrInvalidCredentials
	}

	who := user.Identity()
	token, err := h.issuer.Issue(who)
	if err != nil {
		return identity.Identity{}, ports.Token{}, err
	}

	return who, token, nil
}
