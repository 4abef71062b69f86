package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShippingRequestIsNotConstructed is returned when a ShippingRequest was not
	// created through NewShippingRequest or RestoreShippingRequest.
	ErrShippingRequestIsNotConstructed = errors.New(
		"ShippingRequest must be created via NewShippingRequest constructor",
	)
)

// InitialVersion is the optimistic concurrency version of a freshly created request.
const InitialVersion = 1

// ShippingRequest is the aggregate root of the quotation lifecycle.
//
// ShippingRequest follows these invariants:
//   - id, owner, addresses, package, dates and creation time never change
//   - addresses and the package description are not blank
//   - the preferred delivery date is not before the preferred pickup date
//   - a quotation is present exactly when Status().HasQuotation()
//   - the status only moves forward (see Status)
type ShippingRequest struct {
	id      kernel.UUID
	ownerID kernel.UUID

	pickupAddress   string
	deliveryAddress string
	packageDetails  PackageDetails

	preferredPickupDate   kernel.Date
	preferredDeliveryDate kernel.Date

	status    Status
	quotation *Quotation

	createdAt time.Time

	// version is the value the row had when this aggregate was loaded.
	version int

	isConstructed bool
}

// NewShippingRequest creates a request in WaitingForQuotation.
//
// Besides the field rules it checks that both preferred dates are on or after
// the calendar day of createdAt (the submission date), and that delivery is
// not before pickup. All violations are returned joined.
//
// Example:
//
//	details, _ := shipment.NewPackageDetails(5, dims, "two boxes of books")
//	req, err := shipment.NewShippingRequest(
//	    kernel.NewUUID(), ownerID,
//	    "Dorm A, room 12", "12 Elm Street",
//	    details, pickup, delivery, time.Now(),
//	)
func NewShippingRequest(
	id kernel.UUID,
	ownerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	packageDetails PackageDetails,
	preferredPickupDate kernel.Date,
	preferredDeliveryDate kernel.Date,
	createdAt time.Time,
) (*ShippingRequest, error) {
	req := &ShippingRequest{
		status:        WaitingForQuotation,
		version:       InitialVersion,
		isConstructed: true,
	}

	if err := errors.Join(
		req.setIdentity(id, ownerID, createdAt),
		req.setAddresses(pickupAddress, deliveryAddress),
		req.setPackageDetails(packageDetails),
		req.setPreferredDates(preferredPickupDate, preferredDeliveryDate),
	); err != nil {
		return nil, err
	}

	if err := req.validateDatesNotInPast(); err != nil {
		return nil, err
	}

	return req, nil
}

// RestoreShippingRequest rebuilds a request from persistence. It checks field
// validity and the status/quotation invariant, but not the submission-date rule,
// which only holds at creation time.
func RestoreShippingRequest(
	id kernel.UUID,
	ownerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	packageDetails PackageDetails,
	preferredPickupDate kernel.Date,
	preferredDeliveryDate kernel.Date,
	status Status,
	quotation *Quotation,
	createdAt time.Time,
	version int,
) (*ShippingRequest, error) {
	req := &ShippingRequest{
		isConstructed: true,
	}

	if err := errors.Join(
		req.setIdentity(id, ownerID, createdAt),
		req.setAddresses(pickupAddress, deliveryAddress),
		req.setPackageDetails(packageDetails),
		req.setPreferredDates(preferredPickupDate, preferredDeliveryDate),
		req.setState(status, quotation),
		req.setVersion(version),
	); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate ensures the request was built through a constructor.
func (r *ShippingRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrShippingRequestIsNotConstructed
	}
	return nil
}

func (r *ShippingRequest) ID() kernel.UUID {
	return r.id
}

func (r *ShippingRequest) OwnerID() kernel.UUID {
	return r.ownerID
}

// IsOwnedBy reports whether userID created the request.
func (r *ShippingRequest) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

func (r *ShippingRequest) PickupAddress() string {
	return r.pickupAddress
}

func (r *ShippingRequest) DeliveryAddress() string {
	return r.deliveryAddress
}

func (r *ShippingRequest) PackageDetails() PackageDetails {
	return r.packageDetails
}

func (r *ShippingRequest) PreferredPickupDate() kernel.Date {
	return r.preferredPickupDate
}

func (r *ShippingRequest) PreferredDeliveryDate() kernel.Date {
	return r.preferredDeliveryDate
}

func (r *ShippingRequest) Status() Status {
	return r.status
}

// Quotation returns the quotation, or nil while waiting for one.
func (r *ShippingRequest) Quotation() *Quotation {
	if r.quotation == nil {
		return nil
	}
	q := *r.quotation
	return &q
}

func (r *ShippingRequest) CreatedAt() time.Time {
	return r.createdAt
}

// Version returns the optimistic concurrency version the request was loaded at.
// Repositories condition writes on it.
func (r *ShippingRequest) Version() int {
	return r.version
}

// ProvideQuotation attaches a price and moves the request to QuotationReceived.
// Only a request in WaitingForQuotation can be quoted; quotations are never replaced.
func (r *ShippingRequest) ProvideQuotation(amount kernel.Money, at time.Time) error {
	newStatus, err := r.status.Quote()
	if err != nil {
		return err
	}

	quotation, err := NewQuotation(amount, at)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.quotation = &quotation
	return nil
}

// Respond records the owner's answer to the quotation: Accepted when accept is
// true, Rejected otherwise. The request must be in QuotationReceived.
func (r *ShippingRequest) Respond(accept bool) error {
	var (
		newStatus Status
		err       error
	)
	if accept {
		newStatus, err = r.status.Accept()
	} else {
		newStatus, err = r.status.Reject()
	}
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *ShippingRequest) setIdentity(id, ownerID kernel.UUID, createdAt time.Time) error {
	var createdAtErr error
	if createdAt.IsZero() {
		createdAtErr = errs.NewValueIsRequiredError("created at")
	}

	if err := errors.Join(id.Validate(), ownerID.Validate(), createdAtErr); err != nil {
		return err
	}

	r.id = id
	r.ownerID = ownerID
	r.createdAt = createdAt.UTC()
	return nil
}

func (r *ShippingRequest) setAddresses(pickup, delivery string) error {
	pickup = strings.TrimSpace(pickup)
	delivery = strings.TrimSpace(delivery)

	var pickupErr, deliveryErr error
	if pickup == "" {
		pickupErr = errs.NewValueIsRequiredError("pickup address")
	}
	if delivery == "" {
		deliveryErr = errs.NewValueIsRequiredError("delivery address")
	}
	if err := errors.Join(pickupErr, deliveryErr); err != nil {
		return err
	}

	r.pickupAddress = pickup
	r.deliveryAddress = delivery
	return nil
}

func (r *ShippingRequest) setPackageDetails(details PackageDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}
	r.packageDetails = details
	return nil
}

func (r *ShippingRequest) setPreferredDates(pickup, delivery kernel.Date) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	if delivery.Before(pickup) {
		return errs.NewValueIsInvalidErrorWithCause(
			"preferred delivery date",
			fmt.Errorf("%s is before preferred pickup date %s", delivery, pickup),
		)
	}

	r.preferredPickupDate = pickup
	r.preferredDeliveryDate = delivery
	return nil
}

// validateDatesNotInPast runs after the setters so that it sees valid dates.
func (r *ShippingRequest) validateDatesNotInPast() error {
	submitted := kernel.DateOf(r.createdAt)
	if r.preferredPickupDate.Before(submitted) {
		return errs.NewValueIsInvalidErrorWithCause(
			"preferred pickup date",
			fmt.Errorf("%s is before submission date %s", r.preferredPickupDate, submitted),
		)
	}
	return nil
}

func (r *ShippingRequest) setState(status Status, quotation *Quotation) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if quotation != nil {
		if err := quotation.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveQuotation(quotation != nil); err != nil {
		return err
	}

	r.status = status
	if quotation != nil {
		q := *quotation
		r.quotation = &q
	}
	return nil
}

func (r *ShippingRequest) setVersion(version int) error {
	if version < InitialVersion {
		return errs.NewValueIsOutOfRangeError("version", version, InitialVersion, "+Inf")
	}
	r.version = version
	return nil
}
