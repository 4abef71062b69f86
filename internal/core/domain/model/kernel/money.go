package kernel

import (
	"fmt"
	"math"
	"strconv"

	"shipping/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed is returned when validating a zero Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromCents")

// maxCents bounds amounts so that float conversions stay exact.
const maxCents = int64(1) << 53

// Money is a strictly positive amount in cents. The currency is implicit.
type Money struct {
	cents int64
}

// NewMoney converts a decimal amount to Money, rounding to the nearest cent.
// Amounts that are not finite, not positive, or round to zero are rejected.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}

	cents := math.Round(amount * 100)
	if cents <= 0 || cents > float64(maxCents) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0.01, float64(maxCents)/100)
	}

	return Money{cents: int64(cents)}, nil
}

// MoneyFromCents builds Money from minor units, e.g. 4999 for 49.99.
func MoneyFromCents(cents int64) (Money, error) {
	if cents <= 0 || cents > maxCents {
		return Money{}, errs.NewValueIsOutOfRangeError("amount cents", cents, 1, maxCents)
	}
	return Money{cents: cents}, nil
}

func (m Money) Validate() error {
	if m.cents <= 0 {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// Amount returns the value in major units.
func (m Money) Amount() float64 {
	return float64(m.cents) / 100
}

func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "49.99".
func (m Money) String() string {
	return strconv.FormatFloat(m.Amount(), 'f', 2, 64)
}
