package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// SignOutCommandHandler revokes a token until it would have expired anyway.
type SignOutCommandHandler struct {
	denylist ports.TokenDenylist
}

func NewSignOutCommandHandler(denylist ports.TokenDenylist) SignOutCommandHandler {
	return SignOutCommandHandler{denylist: denylist}
}

func (h SignOutCommandHandler) Handle(ctx context.Context, cmd SignOutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.denylist.Revoke(ctx, cmd.TokenID(), cmd.ExpiresAt())
}
