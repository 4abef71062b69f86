package commands

import (
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrRespondToQuotationCommandIsNotConstructed = errors.New(
		"RespondToQuotationCommand must be created via NewRespondToQuotationCommand constructor",
	)
)

// RespondToQuotationCommand represents the owner accepting or rejecting a quotation.
type RespondToQuotationCommand struct { //nolint:recvcheck //using for validation
	actor     identity.Identity
	requestID kernel.UUID
	accept    bool

	guard guard.ConstructorGuard
}

func NewRespondToQuotationCommand(
	actor identity.Identity,
	requestID kernel.UUID,
	accept bool,
) (RespondToQuotationCommand, error) {
	cmd := RespondToQuotationCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return RespondToQuotationCommand{}, err
	}

	return cmd, nil
}

func (c RespondToQuotationCommand) Validate() error {
	return c.guard.Validate(ErrRespondToQuotationCommandIsNotConstructed)
}

func (c RespondToQuotationCommand) Actor() identity.Identity {
	return c.actor
}

func (c RespondToQuotationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Accept is true for accepting the quotation, false for rejecting it.
func (c RespondToQuotationCommand) Accept() bool {
	return c.accept
}

func (c *RespondToQuotationCommand) setActor(actor identity.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RespondToQuotationCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}
