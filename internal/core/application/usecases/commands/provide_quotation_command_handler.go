package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// ProvideQuotationCommandHandler lets an administrator price a request that is
// waiting for a quotation.
//
// Example:
//
//	req, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAuthorization):
//	    // caller is not an administrator
//	case errors.Is(err, errs.ErrNotFound):
//	    // no such request
//	case errors.Is(err, errs.ErrInvalidState):
//	    // already quoted, possibly by a concurrent call
//	}
type ProvideQuotationCommandHandler struct {
	uowFactory ShippingRequestUoWFactory
	policy     services.AccessPolicy
	clock      ports.Clock
}

func NewProvideQuotationCommandHandler(
	uowFactory ShippingRequestUoWFactory,
	policy services.AccessPolicy,
	clock ports.Clock,
) ProvideQuotationCommandHandler {
	return ProvideQuotationCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle checks the administrator before touching the store, then loads the
// request, applies the transition and writes it conditioned on the loaded
// version, so a concurrent quotation makes this call fail instead of overwriting.
func (h ProvideQuotationCommandHandler) Handle(
	ctx context.Context,
	cmd ProvideQuotationCommand,
) (*shipment.ShippingRequest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.AuthorizeAdministration(cmd.Actor(), services.ActionProvideQuotation); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShippingRequestRepository()
	req, err := repo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	if err = req.ProvideQuotation(cmd.Amount(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
