// Package ports defines the contracts between the core and its adapters:
// the record store (repositories and unit of work), the identity provider
// collaborators (password hashing, tokens, the sign-out denylist) and the clock.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShippingRequestRepository defines the persistence contract for shipping request aggregates.
// Infrastructure failures are returned as errs.StoreError.
type ShippingRequestRepository interface {
	// Add persists a new request.
	Add(ctx context.Context, aggregate *shipment.ShippingRequest) error

	// Update persists a transition of an existing request. The write is conditioned
	// on the version the aggregate was loaded at; if the row changed meanwhile it
	// fails with errs.VersionIsInvalidError (an errs.ErrInvalidState) and nothing is written.
	// A missing row yields errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *shipment.ShippingRequest) error

	// Get retrieves a request by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*shipment.ShippingRequest, error)

	// Delete removes a request permanently, or returns errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
