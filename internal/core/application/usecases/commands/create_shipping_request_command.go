package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShippingRequestCommandIsNotConstructed = errors.New(
		"CreateShippingRequestCommand must be created via NewCreateShippingRequestCommand constructor",
	)
)

// CreateShippingRequestInput carries the raw fields of a new shipping request.
type CreateShippingRequestInput struct {
	PickupAddress         string
	DeliveryAddress       string
	Weight                float64
	Length                float64
	Width                 float64
	Height                float64
	Description           string
	PreferredPickupDate   kernel.Date
	PreferredDeliveryDate kernel.Date
}

// CreateShippingRequestCommand represents a student's request to ship a package.
// The acting identity becomes the owner.
//
// Example:
//
//	cmd, err := NewCreateShippingRequestCommand(who, CreateShippingRequestInput{
//	    PickupAddress:         "Dorm A, room 12",
//	    DeliveryAddress:       "12 Elm Street",
//	    Weight:                5,
//	    Length:                30, Width: 20, Height: 15,
//	    Description:           "two boxes of books",
//	    PreferredPickupDate:   pickup,
//	    PreferredDeliveryDate: delivery,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid shipping request: %w", err)
//	}
//
//	req, err := handler.Handle(ctx, cmd)
type CreateShippingRequestCommand struct { //nolint:recvcheck //using for validation
	actor                 identity.Identity
	pickupAddress         string
	deliveryAddress       string
	packageDetails        shipment.PackageDetails
	preferredPickupDate   kernel.Date
	preferredDeliveryDate kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateShippingRequestCommand validates every field that does not depend on
// the current date. All violations are returned joined.
func NewCreateShippingRequestCommand(
	actor identity.Identity,
	input CreateShippingRequestInput,
) (CreateShippingRequestCommand, error) {
	cmd := CreateShippingRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAddresses(input.PickupAddress, input.DeliveryAddress),
		cmd.setPackageDetails(input),
		cmd.setPreferredDates(input.PreferredPickupDate, input.PreferredDeliveryDate),
	); err != nil {
		return CreateShippingRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShippingRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateShippingRequestCommandIsNotConstructed)
}

func (c CreateShippingRequestCommand) Actor() identity.Identity {
	return c.actor
}

func (c CreateShippingRequestCommand) PickupAddress() string {
	return c.pickupAddress
}

func (c CreateShippingRequestCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateShippingRequestCommand) PackageDetails() shipment.PackageDetails {
	return c.packageDetails
}

func (c CreateShippingRequestCommand) PreferredPickupDate() kernel.Date {
	return c.preferredPickupDate
}

func (c CreateShippingRequestCommand) PreferredDeliveryDate() kernel.Date {
	return c.preferredDeliveryDate
}

func (c *CreateShippingRequestCommand) setActor(actor identity.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateShippingRequestCommand) setAddresses(pickup, delivery string) error {
	var pickupErr, deliveryErr error
	if strings.TrimSpace(pickup) == "" {
		pickupErr = errs.NewValueIsRequiredError("pickup address")
	}
	if strings.TrimSpace(delivery) == "" {
		deliveryErr = errs.NewValueIsRequiredError("delivery address")
	}
	if err := errors.Join(pickupErr, deliveryErr); err != nil {
		return err
	}

	c.pickupAddress = pickup
	c.deliveryAddress = delivery
	return nil
}

func (c *CreateShippingRequestCommand) setPackageDetails(input CreateShippingRequestInput) error {
	dimensions, err := shipment.NewDimensions(input.Length, input.Width, input.Height)
	if err != nil {
		// Report weight and description problems alongside the dimension ones.
		_, detailsErr := shipment.NewPackageDetails(input.Weight, mustDimensions(), input.Description)
		return errors.Join(err, detailsErr)
	}

	details, err := shipment.NewPackageDetails(input.Weight, dimensions, input.Description)
	if err != nil {
		return err
	}

	c.packageDetails = details
	return nil
}

func (c *CreateShippingRequestCommand) setPreferredDates(pickup, delivery kernel.Date) error {
	var pickupErr, deliveryErr error
	if pickup.Validate() != nil {
		pickupErr = errs.NewValueIsRequiredError("preferred pickup date")
	}
	if delivery.Validate() != nil {
		deliveryErr = errs.NewValueIsRequiredError("preferred delivery date")
	}
	if err := errors.Join(pickupErr, deliveryErr); err != nil {
		return err
	}

	if delivery.Before(pickup) {
		return errs.NewValueIsInvalidErrorWithCause(
			"preferred delivery date",
			errors.New("must not be before preferred pickup date"),
		)
	}

	c.preferredPickupDate = pickup
	c.preferredDeliveryDate = delivery
	return nil
}

// mustDimensions returns a valid placeholder used only to collect the remaining
// package validation errors.
func mustDimensions() shipment.Dimensions {
	d, _ := shipment.NewDimensions(1, 1, 1)
	return d
}
