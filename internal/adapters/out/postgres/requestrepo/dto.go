// Package requestrepo persists shipping request aggregates in the shipping_requests table
// and maps between the aggregate and its row.
package requestrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShippingRequestDTO is one row of shipping_requests. Status is stored as its
// text name; quotation columns are NULL until the request is quoted.
type ShippingRequestDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	PickupAddress         string     `gorm:"not null"`
	DeliveryAddress       string     `gorm:"not null"`
	Package               PackageDTO `gorm:"embedded;embeddedPrefix:package_"`
	PreferredPickupDate   time.Time  `gorm:"type:date;not null"`
	PreferredDeliveryDate time.Time  `gorm:"type:date;not null"`
	Status                string     `gorm:"type:varchar(32);not null;index"`
	QuotationAmountCents  *int64
	QuotationDate         *time.Time
	CreatedAt             time.Time `gorm:"not null;index"`
	Version               int       `gorm:"not null"`
}

func (ShippingRequestDTO) TableName() string {
	return "shipping_requests"
}

// PackageDTO is embedded with the package_ prefix.
type PackageDTO struct {
	Weight      float64 `gorm:"not null"`
	Length      float64 `gorm:"not null"`
	Width       float64 `gorm:"not null"`
	Height      float64 `gorm:"not null"`
	Description string  `gorm:"not null"`
}

func fromDomain(req *shipment.ShippingRequest) ShippingRequestDTO {
	details := req.PackageDetails()
	dto := ShippingRequestDTO{
		ID:              req.ID().Bytes(),
		OwnerID:         req.OwnerID().Bytes(),
		PickupAddress:   req.PickupAddress(),
		DeliveryAddress: req.DeliveryAddress(),
		Package: PackageDTO{
			Weight:      details.Weight(),
			Length:      details.Dimensions().Length(),
			Width:       details.Dimensions().Width(),
			Height:      details.Dimensions().Height(),
			Description: details.Description(),
		},
		PreferredPickupDate:   req.PreferredPickupDate().Time(),
		PreferredDeliveryDate: req.PreferredDeliveryDate().Time(),
		Status:                req.Status().String(),
		CreatedAt:             req.CreatedAt(),
		Version:               req.Version(),
	}

	if q := req.Quotation(); q != nil {
		cents := q.Amount().Cents()
		providedAt := q.ProvidedAt()
		dto.QuotationAmountCents = &cents
		dto.QuotationDate = &providedAt
	}

	return dto
}

// toDomain rebuilds the aggregate with RestoreShippingRequest, so a row that
// breaks the status/quotation invariant is reported instead of loaded.
func toDomain(dto ShippingRequestDTO) (*shipment.ShippingRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	dims, err := shipment.NewDimensions(dto.Package.Length, dto.Package.Width, dto.Package.Height)
	if err != nil {
		return nil, err
	}

	details, err := shipment.NewPackageDetails(dto.Package.Weight, dims, dto.Package.Description)
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var quotation *shipment.Quotation
	if dto.QuotationAmountCents != nil && dto.QuotationDate != nil {
		amount, amountErr := kernel.MoneyFromCents(*dto.QuotationAmountCents)
		if amountErr != nil {
			return nil, amountErr
		}

		q, quotationErr := shipment.NewQuotation(amount, dto.QuotationDate.UTC())
		if quotationErr != nil {
			return nil, quotationErr
		}
		quotation = &q
	}

	return shipment.RestoreShippingRequest(
		id,
		ownerID,
		dto.PickupAddress,
		dto.DeliveryAddress,
		details,
		kernel.DateOf(dto.PreferredPickupDate),
		kernel.DateOf(dto.PreferredDeliveryDate),
		status,
		quotation,
		dto.CreatedAt.UTC(),
		dto.Version,
	)
}
