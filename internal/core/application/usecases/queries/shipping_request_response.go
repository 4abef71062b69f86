// Package queries contains read operations over the shipping request records.
// Handlers read through GORM directly instead of loading aggregates, and apply
// the access policy to what they return.
package queries

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

const shippingRequestsTable = "shipping_requests"

// ShippingRequestResponse is the read model of one shipping request.
type ShippingRequestResponse struct {
	ID                    kernel.UUID
	OwnerID               kernel.UUID
	PickupAddress         string
	DeliveryAddress       string
	Weight                float64
	Length                float64
	Width                 float64
	Height                float64
	Description           string
	PreferredPickupDate   kernel.Date
	PreferredDeliveryDate kernel.Date
	Status                shipment.Status
	Quotation             *QuotationResponse
	CreatedAt             time.Time
}

// QuotationResponse is set once the request has been quoted.
type QuotationResponse struct {
	Amount     kernel.Money
	ProvidedAt time.Time
}

// shippingRequestRow mirrors the columns of shipping_requests.
type shippingRequestRow struct {
	ID                    uuid.UUID
	OwnerID               uuid.UUID
	PickupAddress         string
	DeliveryAddress       string
	PackageWeight         float64
	PackageLength         float64
	PackageWidth          float64
	PackageHeight         float64
	PackageDescription    string
	PreferredPickupDate   time.Time
	PreferredDeliveryDate time.Time
	Status                string
	QuotationAmountCents  *int64
	QuotationDate         *time.Time
	CreatedAt             time.Time
}

func (r shippingRequestRow) toResponse() (ShippingRequestResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ShippingRequestResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(r.OwnerID[:])
	if err != nil {
		return ShippingRequestResponse{}, err
	}

	status, err := shipment.ParseStatus(r.Status)
	if err != nil {
		return ShippingRequestResponse{}, err
	}

	resp := ShippingRequestResponse{
		ID:                    id,
		OwnerID:               ownerID,
		PickupAddress:         r.PickupAddress,
		DeliveryAddress:       r.DeliveryAddress,
		Weight:                r.PackageWeight,
		Length:                r.PackageLength,
		Width:                 r.PackageWidth,
		Height:                r.PackageHeight,
		Description:           r.PackageDescription,
		PreferredPickupDate:   kernel.DateOf(r.PreferredPickupDate),
		PreferredDeliveryDate: kernel.DateOf(r.PreferredDeliveryDate),
		Status:                status,
		CreatedAt:             r.CreatedAt.UTC(),
	}

	if r.QuotationAmountCents != nil && r.QuotationDate != nil {
		amount, amountErr := kernel.MoneyFromCents(*r.QuotationAmountCents)
		if amountErr != nil {
			return ShippingRequestResponse{}, amountErr
		}
		resp.Quotation = &QuotationResponse{Amount: amount, ProvidedAt: r.QuotationDate.UTC()}
	}

	return resp, nil
}
