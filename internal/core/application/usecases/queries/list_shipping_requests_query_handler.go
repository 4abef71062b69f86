package queries

import (
	"context"
	"strings"

	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListShippingRequestsQueryHandler reads request listings.
//
// Non-administrators only ever see their own requests, whatever owner filter
// they pass. Administrators see everyone's unless they filter by owner.
type ListShippingRequestsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListShippingRequestsQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListShippingRequestsQueryHandler {
	return ListShippingRequestsQueryHandler{db: db, policy: policy}
}

// Handle returns matching requests ordered by creation time, newest first,
// with ties broken by id. The search term matches pickup address, delivery
// address and description case-insensitively.
func (h ListShippingRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListShippingRequestsQuery,
) ([]ShippingRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := h.policy.OwnerScope(query.Actor(), query.OwnerID())
	if err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table(shippingRequestsTable)
	if ownerID != nil {
		tx = tx.Where("owner_id = ?", ownerID.Bytes())
	}
	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", status.String())
	}
	if search := query.Search(); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		tx = tx.Where(
			"(pickup_address ILIKE @p OR delivery_address ILIKE @p OR package_description ILIKE @p)",
			map[string]any{"p": pattern},
		)
	}

	var rows []shippingRequestRow
	if err = tx.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, errs.NewStoreError("list shipping requests", err)
	}

	result := make([]ShippingRequestResponse, 0, len(rows))
	for _, row := range rows {
		resp, mapErr := row.toResponse()
		if mapErr != nil {
			return nil, mapErr
		}
		result = append(result, resp)
	}

	return result, nil
}
