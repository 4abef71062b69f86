package commands

import (
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrDeleteShippingRequestCommandIsNotConstructed = errors.New(
		"DeleteShippingRequestCommand must be created via NewDeleteShippingRequestCommand constructor",
	)
)

// DeleteShippingRequestCommand represents an administrator removing a request for good.
type DeleteShippingRequestCommand struct { //nolint:recvcheck //using for validation
	actor     identity.Identity
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteShippingRequestCommand(
	actor identity.Identity,
	requestID kernel.UUID,
) (DeleteShippingRequestCommand, error) {
	if err := errors.Join(actor.Validate(), requestID.Validate()); err != nil {
		return DeleteShippingRequestCommand{}, err
	}

	return DeleteShippingRequestCommand{
		actor:     actor,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteShippingRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShippingRequestCommandIsNotConstructed)
}

func (c DeleteShippingRequestCommand) Actor() identity.Identity {
	return c.actor
}

func (c DeleteShippingRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}
