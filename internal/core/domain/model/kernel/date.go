package kernel

import (
	"fmt"
	"time"

	"shipping/internal/pkg/errs"

	"github.com/jinzhu/now"
)

// DateLayout is the textual form of a Date (ISO 8601 calendar date).
const DateLayout = time.DateOnly

// ErrDateIsNotConstructed is returned when validating a zero Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, DateFromString or DateOf")

// Date is a calendar date without a time of day. It is stored as midnight UTC.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its parts. Out of range parts such as February 30
// are rejected instead of being normalized.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		)
	}
	return Date{t: t}, nil
}

// DateFromString parses a date in DateLayout form, e.g. "2025-06-01".
func DateFromString(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return Date{t: t}, nil
}

// DateOf returns the UTC calendar day the instant t falls on.
func DateOf(t time.Time) Date {
	return Date{t: now.With(t.UTC()).BeginningOfDay()}
}

// Validate returns ErrDateIsNotConstructed for the zero Date.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
