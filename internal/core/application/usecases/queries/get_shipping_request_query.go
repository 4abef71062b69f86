package queries

import (
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetShippingRequestQueryIsNotConstructed = errors.New(
		"GetShippingRequestQuery must be created via NewGetShippingRequestQuery constructor",
	)
)

// GetShippingRequestQuery fetches one request for its owner or an administrator.
type GetShippingRequestQuery struct {
	actor     identity.Identity
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShippingRequestQuery(actor identity.Identity, requestID kernel.UUID) (GetShippingRequestQuery, error) {
	if err := errors.Join(actor.Validate(), requestID.Validate()); err != nil {
		return GetShippingRequestQuery{}, err
	}

	return GetShippingRequestQuery{
		actor:     actor,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetShippingRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingRequestQueryIsNotConstructed)
}

func (q GetShippingRequestQuery) Actor() identity.Identity {
	return q.actor
}

func (q GetShippingRequestQuery) RequestID() kernel.UUID {
	return q.requestID
}
