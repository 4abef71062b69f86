package commands

import (
	"context"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
)

// SignUpCommandHandler creates accounts. A second sign-up with the same e-mail
// fails with errs.ErrValidation from the repository.
type SignUpCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	clock      ports.Clock
}

func NewSignUpCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	clock ports.Clock,
) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

func (h SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) (identity.Identity, error) {
	if err := cmd.Validate(); err != nil {
		return identity.Identity{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return identity.Identity{}, err
	}

	user, err := identity.NewUser(kernel.NewUUID(), cmd.Email(), hash, h.clock.Now())
	if err != nil {
		return identity.Identity{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return identity.Identity{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return identity.Identity{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return identity.Identity{}, err
	}

	return user.Identity(), nil
}
