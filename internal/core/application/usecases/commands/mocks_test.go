package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.May, 20, 14, 30, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type MockShippingRequestRepository struct{ mock.Mock }

func (m *MockShippingRequestRepository) Add(ctx context.Context, r *shipment.ShippingRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockShippingRequestRepository) Update(ctx context.Context, r *shipment.ShippingRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockShippingRequestRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.ShippingRequest, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*shipment.ShippingRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShippingRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShippingRequestUoW struct{ mock.Mock }

func (m *MockShippingRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShippingRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShippingRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShippingRequestUoW) ShippingRequestRepository() ports.ShippingRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ShippingRequestRepository)
}

type MockShippingRequestUoWFactory struct{ mock.Mock }

func (m *MockShippingRequestUoWFactory) Create() commands.ShippingRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.ShippingRequestUoW)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*identity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*identity.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*identity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(who identity.Identity) (ports.Token, error) {
	args := m.Called(who)
	return args.Get(0).(ports.Token), args.Error(1)
}

func (m *MockTokenIssuer) Parse(token string) (ports.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

type MockTokenDenylist struct{ mock.Mock }

func (m *MockTokenDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	args := m.Called(ctx, tokenID, until)
	return args.Error(0)
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

const adminEmail = "ops@campus.edu"

func newIdentity(t *testing.T, email string) identity.Identity {
	t.Helper()
	address, err := kernel.NewEmail(email)
	require.NoError(t, err)
	who, err := identity.NewIdentity(kernel.NewUUID(), address)
	require.NoError(t, err)
	return who
}

func newPolicy(t *testing.T) services.AccessPolicy {
	t.Helper()
	address, err := kernel.NewEmail(adminEmail)
	require.NoError(t, err)
	return services.NewAccessPolicy([]kernel.Email{address})
}

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.DateFromString(s)
	require.NoError(t, err)
	return d
}

func validInput(t *testing.T) commands.CreateShippingRequestInput {
	t.Helper()
	return commands.CreateShippingRequestInput{
		PickupAddress:         "Dorm A, room 12",
		DeliveryAddress:       "12 Elm Street",
		Weight:                5,
		Length:                30,
		Width:                 20,
		Height:                15,
		Description:           "two boxes of books",
		PreferredPickupDate:   mustDate(t, "2025-05-21"),
		PreferredDeliveryDate: mustDate(t, "2025-05-23"),
	}
}

// newRequest builds a request owned by owner, waiting for a quotation.
func newRequest(t *testing.T, owner identity.Identity) *shipment.ShippingRequest {
	t.Helper()
	dims, err := shipment.NewDimensions(30, 20, 15)
	require.NoError(t, err)
	details, err := shipment.NewPackageDetails(5, dims, "two boxes of books")
	require.NoError(t, err)
	req, err := shipment.NewShippingRequest(
		kernel.NewUUID(), owner.ID(),
		"Dorm A, room 12", "12 Elm Street",
		details, mustDate(t, "2025-05-21"), mustDate(t, "2025-05-23"), now,
	)
	require.NoError(t, err)
	return req
}

// quotedRequest builds a request owned by owner with a 25.50 quotation.
func quotedRequest(t *testing.T, owner identity.Identity) *shipment.ShippingRequest {
	t.Helper()
	req := newRequest(t, owner)
	amount, err := kernel.NewMoney(25.50)
	require.NoError(t, err)
	require.NoError(t, req.ProvideQuotation(amount, now))
	return req
}
