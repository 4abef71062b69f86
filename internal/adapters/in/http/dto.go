package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/shipment"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Me struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      Me        `json:"user"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PackageDetails struct {
	Weight      float64    `json:"weight"`
	Dimensions  Dimensions `json:"dimensions"`
	Description string     `json:"description"`
}

// NewShippingRequest carries dates as YYYY-MM-DD strings so that a malformed
// date is reported as a validation error rather than a bind failure.
type NewShippingRequest struct {
	PickupAddress         string         `json:"pickup_address"`
	DeliveryAddress       string         `json:"delivery_address"`
	PackageDetails        PackageDetails `json:"package_details"`
	PreferredPickupDate   string         `json:"preferred_pickup_date"`
	PreferredDeliveryDate string         `json:"preferred_delivery_date"`
}

type NewQuotation struct {
	Amount *float64 `json:"amount"`
}

type QuotationResponse struct {
	Accept *bool `json:"accept"`
}

// ShippingRequest is the wire form of a request. The quotation fields are
// null until the request is quoted.
type ShippingRequest struct {
	ID                    string         `json:"id"`
	OwnerID               string         `json:"owner_id"`
	PickupAddress         string         `json:"pickup_address"`
	DeliveryAddress       string         `json:"delivery_address"`
	PackageDetails        PackageDetails `json:"package_details"`
	PreferredPickupDate   string         `json:"preferred_pickup_date"`
	PreferredDeliveryDate string         `json:"preferred_delivery_date"`
	Status                string         `json:"status"`
	QuotationAmount       *float64       `json:"quotation_amount"`
	QuotationDate         *time.Time     `json:"quotation_date"`
	CreatedAt             time.Time      `json:"created_at"`
}

type Statistics struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

func toMe(who identity.Identity, isAdmin bool) Me {
	return Me{
		ID:      who.ID().String(),
		Email:   who.Email().String(),
		IsAdmin: isAdmin,
	}
}

func fromAggregate(req *shipment.ShippingRequest) ShippingRequest {
	details := req.PackageDetails()
	out := ShippingRequest{
		ID:              req.ID().String(),
		OwnerID:         req.OwnerID().String(),
		PickupAddress:   req.PickupAddress(),
		DeliveryAddress: req.DeliveryAddress(),
		PackageDetails: PackageDetails{
			Weight: details.Weight(),
			Dimensions: Dimensions{
				Length: details.Dimensions().Length(),
				Width:  details.Dimensions().Width(),
				Height: details.Dimensions().Height(),
			},
			Description: details.Description(),
		},
		PreferredPickupDate:   req.PreferredPickupDate().String(),
		PreferredDeliveryDate: req.PreferredDeliveryDate().String(),
		Status:                req.Status().String(),
		CreatedAt:             req.CreatedAt().UTC(),
	}

	if q := req.Quotation(); q != nil {
		amount := q.Amount().Amount()
		providedAt := q.ProvidedAt().UTC()
		out.QuotationAmount = &amount
		out.QuotationDate = &providedAt
	}

	return out
}

func fromReadModel(r queries.ShippingRequestResponse) ShippingRequest {
	out := ShippingRequest{
		ID:              r.ID.String(),
		OwnerID:         r.OwnerID.String(),
		PickupAddress:   r.PickupAddress,
		DeliveryAddress: r.DeliveryAddress,
		PackageDetails: PackageDetails{
			Weight: r.Weight,
			Dimensions: Dimensions{
				Length: r.Length,
				Width:  r.Width,
				Height: r.Height,
			},
			Description: r.Description,
		},
		PreferredPickupDate:   r.PreferredPickupDate.String(),
		PreferredDeliveryDate: r.PreferredDeliveryDate.String(),
		Status:                r.Status.String(),
		CreatedAt:             r.CreatedAt.UTC(),
	}

	if r.Quotation != nil {
		amount := r.Quotation.Amount.Amount()
		providedAt := r.Quotation.ProvidedAt.UTC()
		out.QuotationAmount = &amount
		out.QuotationDate = &providedAt
	}

	return out
}

func fromStatistics(stats queries.GetRequestStatisticsQueryResponse) Statistics {
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for _, status := range shipment.Statuses() {
		byStatus[status.String()] = stats.ByStatus[status]
	}
	return Statistics{
		Total:    stats.Total,
		ByStatus: byStatus,
	}
}
