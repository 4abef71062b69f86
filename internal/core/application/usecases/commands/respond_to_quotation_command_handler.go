package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
)

// RespondToQuotationCommandHandler applies the owner's answer to a quotation.
type RespondToQuotationCommandHandler struct {
	uowFactory ShippingRequestUoWFactory
	policy     services.AccessPolicy
}

func NewRespondToQuotationCommandHandler(
	uowFactory ShippingRequestUoWFactory,
	policy services.AccessPolicy,
) RespondToQuotationCommandHandler {
	return RespondToQuotationCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle loads the request, requires the actor to own it whatever its status,
// and moves it to Accepted or Rejected. Returns errs.ErrNotFound,
// errs.ErrAuthorization or errs.ErrInvalidState in that order of checking.
func (h RespondToQuotationCommandHandler) Handle(
	ctx context.Context,
	cmd RespondToQuotationCommand,
) (*shipment.ShippingRequest, error) {
	if err := cmd.Validate(); err != nil {
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

	if err = h.policy.AuthorizeResponse(cmd.Actor(), req); err != nil {
		return nil, err
	}

	if err = req.Respond(cmd.Accept()); err != nil {
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
