package requestrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

const entityName = "shipping request"

// GormShippingRequestRepository implements ports.ShippingRequestRepository using GORM.
type GormShippingRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShippingRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormShippingRequestRepository {
	return &GormShippingRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new request row.
func (r *GormShippingRequestRepository) Add(ctx context.Context, aggregate *shipment.ShippingRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreError("add shipping request", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status and quotation only if the row is still at the version the
// aggregate was loaded at, and bumps the version. Immutable fields are never rewritten.
func (r *GormShippingRequestRepository) Update(ctx context.Context, aggregate *shipment.ShippingRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShippingRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":                 dto.Status,
			"quotation_amount_cents": dto.QuotationAmountCents,
			"quotation_date":         dto.QuotationDate,
			"version":                dto.Version + 1,
		})
	if result.Error != nil {
		return errs.NewStoreError("update shipping request", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.conflictOrMissing(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormShippingRequestRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.ShippingRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShippingRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(entityName, id.String())
		}
		return nil, errs.NewStoreError("get shipping request", err)
	}

	return toDomain(dto)
}

// Delete removes the row for good.
func (r *GormShippingRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShippingRequestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewStoreError("delete shipping request", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityName, id.String())
	}

	return nil
}

func (r *GormShippingRequestRepository) conflictOrMissing(ctx context.Context, id kernel.UUID) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&ShippingRequestDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error
	if err != nil {
		return errs.NewStoreError("update shipping request", err)
	}

	if count == 0 {
		return errs.NewObjectNotFoundError(entityName, id.String())
	}

	return errs.NewVersionIsInvalidErrorWithCause(
		entityName,
		errors.New("modified concurrently, reload and retry"),
	)
}
