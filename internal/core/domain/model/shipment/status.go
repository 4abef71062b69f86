package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipping request.
//
// State transitions:
//
//	WaitingForQuotation ──> QuotationReceived ──┬──> Accepted
//	                                            └──> Rejected
//
// Accepted and Rejected are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// WaitingForQuotation is the initial status assigned at creation.
	WaitingForQuotation

	// QuotationReceived indicates the administrator has priced the request.
	QuotationReceived

	// Accepted indicates the owner agreed to the quotation.
	Accepted

	// Rejected indicates the owner declined the quotation.
	Rejected
)

// getValidStatusStrings returns the persisted text of every valid status.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingForQuotation: "WAITING_FOR_QUOTATION",
		QuotationReceived:   "QUOTATION_RECEIVED",
		Accepted:            "ACCEPTED",
		Rejected:            "REJECTED",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{WaitingForQuotation, QuotationReceived, Accepted, Rejected}
}

// ParseStatus converts the persisted text form back to a Status.
//
// Example:
//
//	status, err := shipment.ParseStatus("QUOTATION_RECEIVED")
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted text of the status, or "UNKNOWN".
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Accepted || s == Rejected
}

// HasQuotation reports whether a request in status s must carry a quotation.
func (s Status) HasQuotation() bool {
	return s == QuotationReceived || s == Accepted || s == Rejected
}

// ValidateCanHaveQuotation checks the consistency between status and quotation presence.
func (s Status) ValidateCanHaveQuotation(quoted bool) error {
	if quoted && !s.HasQuotation() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a quotation", s),
		)
	}
	if !quoted && s.HasQuotation() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no quotation", s),
		)
	}
	return nil
}

// Quote transitions WaitingForQuotation to QuotationReceived.
// Any other source status yields an InvalidStateError.
func (s Status) Quote() (Status, error) {
	if s != WaitingForQuotation {
		return Unknown, errs.NewInvalidStateError("provide quotation", s)
	}
	return QuotationReceived, nil
}

// Accept transitions QuotationReceived to Accepted.
func (s Status) Accept() (Status, error) {
	if s != QuotationReceived {
		return Unknown, errs.NewInvalidStateError("accept quotation", s)
	}
	return Accepted, nil
}

// Reject transitions QuotationReceived to Rejected.
func (s Status) Reject() (Status, error) {
	if s != QuotationReceived {
		return Unknown, errs.NewInvalidStateError("reject quotation", s)
	}
	return Rejected, nil
}
