package http_test

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSignUpHandler struct{ mock.Mock }

func (m *MockSignUpHandler) Handle(ctx context.Context, cmd commands.SignUpCommand) (identity.Identity, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(identity.Identity), args.Error(1)
}

type MockSignInHandler struct{ mock.Mock }

func (m *MockSignInHandler) Handle(
	ctx context.Context,
	cmd commands.SignInCommand,
) (identity.Identity, ports.Token, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(identity.Identity), args.Get(1).(ports.Token), args.Error(2)
}

type MockSignOutHandler struct{ mock.Mock }

func (m *MockSignOutHandler) Handle(ctx context.Context, cmd commands.SignOutCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCreateHandler struct{ mock.Mock }

func (m *MockCreateHandler) Handle(
	ctx context.Context,
	cmd commands.CreateShippingRequestCommand,
) (*shipment.ShippingRequest, error) {
	args := m.Called(ctx, cmd)
	if r, ok := args.Get(0).(*shipment.ShippingRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProvideQuotationHandler struct{ mock.Mock }

func (m *MockProvideQuotationHandler) Handle(
	ctx context.Context,
	cmd commands.ProvideQuotationCommand,
) (*shipment.ShippingRequest, error) {
	args := m.Called(ctx, cmd)
	if r, ok := args.Get(0).(*shipment.ShippingRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRespondHandler struct{ mock.Mock }

func (m *MockRespondHandler) Handle(
	ctx context.Context,
	cmd commands.RespondToQuotationCommand,
) (*shipment.ShippingRequest, error) {
	args := m.Called(ctx, cmd)
	if r, ok := args.Get(0).(*shipment.ShippingRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeleteHandler struct{ mock.Mock }

func (m *MockDeleteHandler) Handle(ctx context.Context, cmd commands.DeleteShippingRequestCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockListHandler struct{ mock.Mock }

func (m *MockListHandler) Handle(
	ctx context.Context,
	query queries.ListShippingRequestsQuery,
) ([]queries.ShippingRequestResponse, error) {
	args := m.Called(ctx, query)
	if r, ok := args.Get(0).([]queries.ShippingRequestResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGetHandler struct{ mock.Mock }

func (m *MockGetHandler) Handle(
	ctx context.Context,
	query queries.GetShippingRequestQuery,
) (queries.ShippingRequestResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ShippingRequestResponse), args.Error(1)
}

type MockStatisticsHandler struct{ mock.Mock }

func (m *MockStatisticsHandler) Handle(
	ctx context.Context,
	query queries.GetRequestStatisticsQuery,
) (queries.GetRequestStatisticsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRequestStatisticsQueryResponse), args.Error(1)
}

var errUnknownToken = errors.New("unknown token")

// stubIssuer accepts the tokens it was given, keyed by raw value.
type stubIssuer struct {
	tokens map[string]ports.TokenClaims
}

func (s stubIssuer) Issue(identity.Identity) (ports.Token, error) {
	return ports.Token{}, errors.New("not used")
}

func (s stubIssuer) Parse(token string) (ports.TokenClaims, error) {
	claims, ok := s.tokens[token]
	if !ok {
		return ports.TokenClaims{}, errUnknownToken
	}
	return claims, nil
}

type stubDenylist struct {
	revoked map[string]bool
	err     error
}

func (s stubDenylist) Revoke(context.Context, string, time.Time) error {
	return nil
}

func (s stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[tokenID], nil
}
