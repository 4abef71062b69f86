package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetShippingRequestQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetShippingRequestQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetShippingRequestQueryHandler {
	return GetShippingRequestQueryHandler{db: db, policy: policy}
}

// Handle returns errs.ErrNotFound for a missing id and errs.ErrAuthorization
// when the actor neither owns the request nor administers.
func (h GetShippingRequestQueryHandler) Handle(
	ctx context.Context,
	query GetShippingRequestQuery,
) (ShippingRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return ShippingRequestResponse{}, err
	}

	var row shippingRequestRow
	err := h.db.WithContext(ctx).
		Table(shippingRequestsTable).
		Where("id = ?", query.RequestID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShippingRequestResponse{}, errs.NewObjectNotFoundError("shipping request", query.RequestID().String())
		}
		return ShippingRequestResponse{}, errs.NewStoreError("get shipping request", err)
	}

	resp, err := row.toResponse()
	if err != nil {
		return ShippingRequestResponse{}, err
	}

	if err = h.policy.AuthorizeView(query.Actor(), resp.OwnerID); err != nil {
		return ShippingRequestResponse{}, err
	}

	return resp, nil
}
