package services

import (
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// Actions named in AccessDeniedError messages.
const (
	ActionProvideQuotation = "provide quotation"
	ActionRespond          = "respond to quotation"
	ActionDelete           = "delete shipping request"
	ActionView             = "view shipping request"
	ActionViewStatistics   = "view request statistics"
)

// AccessPolicy holds the administrator allow-list.
//
// Example usage:
//
//	admin, _ := kernel.NewEmail("ops@campus.edu")
//	policy := services.NewAccessPolicy([]kernel.Email{admin})
//
//	if err := policy.AuthorizeAdministration(who, services.ActionDelete); err != nil {
//	    return err // errs.ErrAuthorization
//	}
type AccessPolicy struct {
	administrators map[string]struct{}
}

// NewAccessPolicy builds a policy. Matching is exact and case-sensitive;
// an empty list means nobody is an administrator.
func NewAccessPolicy(administrators []kernel.Email) AccessPolicy {
	set := make(map[string]struct{}, len(administrators))
	for _, email := range administrators {
		if email.Validate() != nil {
			continue
		}
		set[email.String()] = struct{}{}
	}
	return AccessPolicy{administrators: set}
}

// IsAdministrator reports whether the identity's e-mail is on the allow-list.
func (p AccessPolicy) IsAdministrator(who identity.Identity) bool {
	if who.Validate() != nil {
		return false
	}
	_, ok := p.administrators[who.Email().String()]
	return ok
}

// AuthorizeAdministration allows administrators only.
func (p AccessPolicy) AuthorizeAdministration(who identity.Identity, action string) error {
	if !p.IsAdministrator(who) {
		return errs.NewAccessDeniedError(action, actorOf(who))
	}
	return nil
}

// AuthorizeResponse allows the owner of req only. Administrators get no exception.
func (p AccessPolicy) AuthorizeResponse(who identity.Identity, req *shipment.ShippingRequest) error {
	if who.Validate() != nil || !req.IsOwnedBy(who.ID()) {
		return errs.NewAccessDeniedError(ActionRespond, actorOf(who))
	}
	return nil
}

// AuthorizeView allows the owner of a request and administrators.
func (p AccessPolicy) AuthorizeView(who identity.Identity, ownerID kernel.UUID) error {
	if p.IsAdministrator(who) {
		return nil
	}
	if who.Validate() != nil || !ownerID.IsEqual(who.ID()) {
		return errs.NewAccessDeniedError(ActionView, actorOf(who))
	}
	return nil
}

// OwnerScope returns the owner filter a listing must apply. Administrators get
// the requested filter (nil means every owner); anyone else is pinned to their
// own id whatever they asked for.
func (p AccessPolicy) OwnerScope(who identity.Identity, requested *kernel.UUID) (*kernel.UUID, error) {
	if who.Validate() != nil {
		return nil, errs.NewAccessDeniedError("list shipping requests", actorOf(who))
	}
	if p.IsAdministrator(who) {
		return requested, nil
	}
	own := who.ID()
	return &own, nil
}

func actorOf(who identity.Identity) string {
	if who.Validate() != nil {
		return "anonymous"
	}
	return who.ID().String()
}
