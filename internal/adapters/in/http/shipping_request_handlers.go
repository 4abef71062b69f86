package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateShippingRequest handles POST /api/v1/requests - submits a request owned by the caller.
func (s *Server) CreateShippingRequest(ctx echo.Context) error {
	who, ok := identityFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	var body NewShippingRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	pickup, pickupErr := kernel.DateFromString(body.PreferredPickupDate)
	delivery, deliveryErr := kernel.DateFromString(body.PreferredDeliveryDate)
	if err := errors.Join(
		wrapField("preferred_pickup_date", pickupErr),
		wrapField("preferred_delivery_date", deliveryErr),
	); err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateShippingRequestCommand(who, commands.CreateShippingRequestInput{
		PickupAddress:         body.PickupAddress,
		DeliveryAddress:       body.DeliveryAddress,
		Weight:                body.PackageDetails.Weight,
		Length:                body.PackageDetails.Dimensions.Length,
		Width:                 body.PackageDetails.Dimensions.Width,
		Height:                body.PackageDetails.Dimensions.Height,
		Description:           body.PackageDetails.Description,
		PreferredPickupDate:   pickup,
		PreferredDeliveryDate: delivery,
	})
	if err != nil {
		return fail(ctx, err)
	}

	req, err := s.handlers.CreateShippingRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(req))
}

// ListShippingRequests handles GET /api/v1/requests - lists visible requests, newest first.
func (s *Server) ListShippingRequests(ctx echo.Context) error {
	who, ok := identityFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	params, err := bindListParams(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	filter, err := params.toFilter()
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewListShippingRequestsQuery(who, filter)
	if err != nil {
		return fail(ctx, err)
	}

	requests, err := s.handlers.ListShippingRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]ShippingRequest, len(requests))
	for i, req := range requests {
		response[i] = fromReadModel(req)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShippingRequest handles GET /api/v1/requests/:id.
func (s *Server) GetShippingRequest(ctx echo.Context) error {
	who, ok := identityFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	requestID, err := requestIDParam(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetShippingRequestQuery(who, requestID)
	if err != nil {
		return fail(ctx, err)
	}

	req, err := s.handlers.GetShippingRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(req))
}

// DeleteShippingRequest handles DELETE /api/v1/requests/:id - administrators only.
func (s *Server) DeleteShippingRequest(ctx echo.Context) error {
	who, ok := identityFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	requestID, err := requestIDParam(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShippingRequestCommand(who, requestID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.DeleteShippingRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProvideQuotation handles POST /api/v1/requests/:id/quotation - administrators only.
func (s *Server) ProvideQuotation(ctx echo.Context) error {
	who, ok := identityFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	requestID, err := requestIDParam(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var body NewQuotation
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if body.Amount == nil {
		return fail(ctx, errs.NewValueIsRequiredError("amount"))
	}

	cmd, err := commands.NewProvideQuotationCommand(who, requestID, *body.Amount)
	if err != nil {
		return fail(ctx, err)
	}

	req, err := s.handlers.ProvideQuotation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(req))
}

// RespondToQuotation handles POST /api/v1/requests/:id/response - the owner accepts or rejects.
func (s *Server) RespondToQuotation(ctx echo.Context) error {
	who, ok := identityFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	requestID, err := requestIDParam(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var body QuotationResponse
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if body.Accept == nil {
		return fail(ctx, errs.NewValueIsRequiredError("accept"))
	}

	cmd, err := commands.NewRespondToQuotationCommand(who, requestID, *body.Accept)
	if err != nil {
		return fail(ctx, err)
	}

	req, err := s.handlers.RespondToQuotation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(req))
}

// GetStatistics handles GET /api/v1/statistics - administrators only.
func (s *Server) GetStatistics(ctx echo.Context) error {
	who, ok := identityFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	query, err := queries.NewGetRequestStatisticsQuery(who)
	if err != nil {
		return fail(ctx, err)
	}

	stats, err := s.handlers.GetRequestStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromStatistics(stats))
}

// ListShippingRequestsParams are the query parameters of GET /api/v1/requests.
type ListShippingRequestsParams struct {
	OwnerID *string
	Status  *string
	Search  *string
}

func bindListParams(ctx echo.Context) (ListShippingRequestsParams, error) {
	var params ListShippingRequestsParams
	query := ctx.QueryParams()

	if err := runtime.BindQueryParameter("form", true, false, "owner_id", query, &params.OwnerID); err != nil {
		return ListShippingRequestsParams{}, wrapField("owner_id", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", query, &params.Status); err != nil {
		return ListShippingRequestsParams{}, wrapField("status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "search", query, &params.Search); err != nil {
		return ListShippingRequestsParams{}, wrapField("search", err)
	}

	return params, nil
}

func (p ListShippingRequestsParams) toFilter() (queries.ListFilter, error) {
	var filter queries.ListFilter

	if p.Search != nil {
		filter.Search = *p.Search
	}

	if p.OwnerID != nil && *p.OwnerID != "" {
		ownerID, err := kernel.UUIDFromString(*p.OwnerID)
		if err != nil {
			return queries.ListFilter{}, wrapField("owner_id", err)
		}
		filter.OwnerID = &ownerID
	}

	if p.Status != nil && *p.Status != "" {
		status, err := shipment.ParseStatus(*p.Status)
		if err != nil {
			return queries.ListFilter{}, wrapField("status", err)
		}
		filter.Status = &status
	}

	return filter, nil
}

func requestIDParam(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, wrapField("id", err)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, wrapField("id", err)
	}
	return id, nil
}

func wrapField(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(name, err)
}
