package queries

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRequestStatisticsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetRequestStatisticsQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetRequestStatisticsQueryHandler {
	return GetRequestStatisticsQueryHandler{db: db, policy: policy}
}

func (h GetRequestStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetRequestStatisticsQuery,
) (GetRequestStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRequestStatisticsQueryResponse{}, err
	}

	if !query.IsSystem() {
		if err := h.policy.AuthorizeAdministration(query.Actor(), services.ActionViewStatistics); err != nil {
			return GetRequestStatisticsQueryResponse{}, err
		}
	}

	var counts []struct {
		Status string
		Count  int64
	}
	err := h.db.WithContext(ctx).
		Table(shippingRequestsTable).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return GetRequestStatisticsQueryResponse{}, errs.NewStoreError("count shipping requests", err)
	}

	resp := GetRequestStatisticsQueryResponse{
		ByStatus: make(map[shipment.Status]int64, len(shipment.Statuses())),
	}
	for _, status := range shipment.Statuses() {
		resp.ByStatus[status] = 0
	}

	for _, c := range counts {
		status, parseErr := shipment.ParseStatus(c.Status)
		if parseErr != nil {
			return GetRequestStatisticsQueryResponse{}, parseErr
		}
		resp.ByStatus[status] = c.Count
		resp.Total += c.Count
	}

	return resp, nil
}
