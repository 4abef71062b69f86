package http

import (
	"context"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// Use case contracts the HTTP layer depends on. The command and query
// handlers satisfy them as they are.
type (
	SignUpHandler interface {
		Handle(ctx context.Context, cmd commands.SignUpCommand) (identity.Identity, error)
	}

	SignInHandler interface {
		Handle(ctx context.Context, cmd commands.SignInCommand) (identity.Identity, ports.Token, error)
	}

	SignOutHandler interface {
		Handle(ctx context.Context, cmd commands.SignOutCommand) error
	}

	CreateShippingRequestHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShippingRequestCommand) (*shipment.ShippingRequest, error)
	}

	ProvideQuotationHandler interface {
		Handle(ctx context.Context, cmd commands.ProvideQuotationCommand) (*shipment.ShippingRequest, error)
	}

	RespondToQuotationHandler interface {
		Handle(ctx context.Context, cmd commands.RespondToQuotationCommand) (*shipment.ShippingRequest, error)
	}

	DeleteShippingRequestHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteShippingRequestCommand) error
	}

	ListShippingRequestsHandler interface {
		Handle(ctx context.Context, query queries.ListShippingRequestsQuery) ([]queries.ShippingRequestResponse, error)
	}

	GetShippingRequestHandler interface {
		Handle(ctx context.Context, query queries.GetShippingRequestQuery) (queries.ShippingRequestResponse, error)
	}

	GetRequestStatisticsHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetRequestStatisticsQuery,
		) (queries.GetRequestStatisticsQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	SignUp                SignUpHandler
	SignIn                SignInHandler
	SignOut               SignOutHandler
	CreateShippingRequest CreateShippingRequestHandler
	ProvideQuotation      ProvideQuotationHandler
	RespondToQuotation    RespondToQuotationHandler
	DeleteShippingRequest DeleteShippingRequestHandler

	// Query handlers
	ListShippingRequests ListShippingRequestsHandler
	GetShippingRequest   GetShippingRequestHandler
	GetRequestStatistics GetRequestStatisticsHandler
}

// Server translates HTTP requests into commands and queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	policy   services.AccessPolicy
}

// NewServer creates a new HTTP server with the required command and query handlers.
// The policy only answers "is this caller an administrator" for /me; every
// authorization decision is made by the use cases.
func NewServer(handlers Handlers, policy services.AccessPolicy) *Server {
	return &Server{
		handlers: handlers,
		policy:   policy,
	}
}
