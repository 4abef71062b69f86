package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var ErrQuotationIsNotConstructed = errors.New("Quotation must be created via NewQuotation constructor")

// Quotation is the price the administrator attached to a request, and when.
type Quotation struct {
	amount     kernel.Money
	providedAt time.Time
}

func NewQuotation(amount kernel.Money, providedAt time.Time) (Quotation, error) {
	if err := amount.Validate(); err != nil {
		return Quotation{}, err
	}
	if providedAt.IsZero() {
		return Quotation{}, errs.NewValueIsRequiredError("quotation date")
	}

	return Quotation{amount: amount, providedAt: providedAt.UTC()}, nil
}

func (q Quotation) Validate() error {
	if q.amount.Validate() != nil || q.providedAt.IsZero() {
		return ErrQuotationIsNotConstructed
	}
	return nil
}

func (q Quotation) Amount() kernel.Money {
	return q.amount
}

func (q Quotation) ProvidedAt() time.Time {
	return q.providedAt
}
