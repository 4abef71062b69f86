// Package errs provides standardized error types for the shipping service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced object does not exist
//   - AccessDeniedError: the acting identity lacks the role or ownership required
//   - InvalidStateError, VersionIsInvalidError: a transition is not legal right now
//   - StoreError: the record store failed for infrastructural reasons
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// On top of the sentinels, every type also reports one of the category errors
// ErrValidation, ErrAuthorization, ErrInvalidState, ErrNotFound or ErrStore
// through errors.Is, so callers can classify a failure without knowing the
// concrete type:
//
//	switch {
//	case errors.Is(err, errs.ErrValidation):
//	    // 400
//	case errors.Is(err, errs.ErrNotFound):
//	    // 404
//	}
package errs
