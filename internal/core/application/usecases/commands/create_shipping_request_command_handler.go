package commands

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// CreateShippingRequestCommandHandler creates requests in WaitingForQuotation.
//
// Example:
//
//	handler := NewCreateShippingRequestCommandHandler(uowFactory, ports.SystemClock{})
//	req, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValidation) {
//	    // dates before today, or other malformed input
//	}
type CreateShippingRequestCommandHandler struct {
	uowFactory ShippingRequestUoWFactory
	clock      ports.Clock
}

func NewCreateShippingRequestCommandHandler(
	uowFactory ShippingRequestUoWFactory,
	clock ports.Clock,
) CreateShippingRequestCommandHandler {
	return CreateShippingRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle builds the aggregate, which checks the dates against the current
// day, and persists it in a transaction. No store call happens when
// validation fails.
func (h CreateShippingRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShippingRequestCommand,
) (*shipment.ShippingRequest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	req, err := shipment.NewShippingRequest(
		kernel.NewUUID(),
		cmd.Actor().ID(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.PackageDetails(),
		cmd.PreferredPickupDate(),
		cmd.PreferredDeliveryDate(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShippingRequestRepository().Add(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
