// Package guard holds the constructor guard shared by commands, queries and domain objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its constructor. Embed it in
// a struct and call Validate to tell a constructed value from a zero value.
//
// Example usage:
//
//	var ErrQuoteNotConstructed = errors.New("Quote must be created via NewQuote")
//
//	type Quote struct {
//	    cents int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuote(cents int64) (Quote, error) {
//	    if cents <= 0 {
//	        return Quote{}, errors.New("quote must be positive")
//	    }
//	    return Quote{cents: cents, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
