package queries

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrListShippingRequestsQueryIsNotConstructed = errors.New(
		"ListShippingRequestsQuery must be created via NewListShippingRequestsQuery constructor",
	)
)

// ListFilter narrows a listing. Zero value means no filter.
type ListFilter struct {
	OwnerID *kernel.UUID
	Status  *shipment.Status
	Search  string
}

// ListShippingRequestsQuery lists requests visible to the actor, newest first.
//
// Example:
//
//	waiting := shipment.WaitingForQuotation
//	query, err := NewListShippingRequestsQuery(who, ListFilter{Status: &waiting, Search: "elm"})
//	if err != nil {
//	    return err
//	}
//
//	requests, err := handler.Handle(ctx, query)
type ListShippingRequestsQuery struct {
	actor   identity.Identity
	ownerID *kernel.UUID
	status  *shipment.Status
	search  string

	guard guard.ConstructorGuard
}

func NewListShippingRequestsQuery(actor identity.Identity, filter ListFilter) (ListShippingRequestsQuery, error) {
	var ownerErr, statusErr error
	if filter.OwnerID != nil {
		ownerErr = filter.OwnerID.Validate()
	}
	if filter.Status != nil {
		statusErr = filter.Status.Validate()
	}

	if err := errors.Join(actor.Validate(), ownerErr, statusErr); err != nil {
		return ListShippingRequestsQuery{}, err
	}

	return ListShippingRequestsQuery{
		actor:   actor,
		ownerID: filter.OwnerID,
		status:  filter.Status,
		search:  strings.TrimSpace(filter.Search),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListShippingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListShippingRequestsQueryIsNotConstructed)
}

func (q ListShippingRequestsQuery) Actor() identity.Identity {
	return q.actor
}

// OwnerID is the requested owner filter, before the access policy narrows it.
func (q ListShippingRequestsQuery) OwnerID() *kernel.UUID {
	return q.ownerID
}

func (q ListShippingRequestsQuery) Status() *shipment.Status {
	return q.status
}

func (q ListShippingRequestsQuery) Search() string {
	return q.search
}
