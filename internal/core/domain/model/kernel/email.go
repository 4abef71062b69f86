package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"shipping/internal/pkg/errs"
)

// ErrEmailIsNotConstructed is returned when validating a zero Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("Email must be created via NewEmail")

// Email is a bare e-mail address ("user@example.com", no display name).
// Comparison is exact and case-sensitive.
type Email struct {
	address string
}

func NewEmail(address string) (Email, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if parsed.Address != address {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a bare address", address),
		)
	}

	return Email{address: address}, nil
}

func (e Email) Validate() error {
	if e.address == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}

func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

func (e Email) String() string {
	return e.address
}
