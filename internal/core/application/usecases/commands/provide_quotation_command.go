package commands

import (
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrProvideQuotationCommandIsNotConstructed = errors.New(
		"ProvideQuotationCommand must be created via NewProvideQuotationCommand constructor",
	)
)

// ProvideQuotationCommand represents an administrator pricing a request.
type ProvideQuotationCommand struct { //nolint:recvcheck //using for validation
	actor     identity.Identity
	requestID kernel.UUID
	amount    kernel.Money

	guard guard.ConstructorGuard
}

// NewProvideQuotationCommand validates the identifiers and that amount is
// strictly positive once rounded to cents.
func NewProvideQuotationCommand(
	actor identity.Identity,
	requestID kernel.UUID,
	amount float64,
) (ProvideQuotationCommand, error) {
	cmd := ProvideQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
		cmd.setAmount(amount),
	); err != nil {
		return ProvideQuotationCommand{}, err
	}

	return cmd, nil
}

func (c ProvideQuotationCommand) Validate() error {
	return c.guard.Validate(ErrProvideQuotationCommandIsNotConstructed)
}

func (c ProvideQuotationCommand) Actor() identity.Identity {
	return c.actor
}

func (c ProvideQuotationCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c ProvideQuotationCommand) Amount() kernel.Money {
	return c.amount
}

func (c *ProvideQuotationCommand) setActor(actor identity.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ProvideQuotationCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *ProvideQuotationCommand) setAmount(amount float64) error {
	money, err := kernel.NewMoney(amount)
	if err != nil {
		return err
	}
	c.amount = money
	return nil
}
