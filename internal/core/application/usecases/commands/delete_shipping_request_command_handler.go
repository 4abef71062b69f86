package commands

import (
	"context"

	"shipping/internal/core/domain/services"
)

// DeleteShippingRequestCommandHandler hard-deletes requests. There is no
// tombstone: a deleted id is simply not found afterwards.
type DeleteShippingRequestCommandHandler struct {
	uowFactory ShippingRequestUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteShippingRequestCommandHandler(
	uowFactory ShippingRequestUoWFactory,
	policy services.AccessPolicy,
) DeleteShippingRequestCommandHandler {
	return DeleteShippingRequestCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h DeleteShippingRequestCommandHandler) Handle(ctx context.Context, cmd DeleteShippingRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.AuthorizeAdministration(cmd.Actor(), services.ActionDelete); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShippingRequestRepository().Delete(ctx, cmd.RequestID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
