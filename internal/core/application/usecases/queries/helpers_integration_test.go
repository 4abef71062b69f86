package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/requestrepo"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const adminEmail = "ops@campus.edu"

var baseTime = time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return container, nil, err
	}

	return container, db, db.AutoMigrate(&requestrepo.ShippingRequestDTO{})
}

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

// seedRequest stores a request for owner created at baseTime plus offset.
func seedRequest(
	t *testing.T,
	db *gorm.DB,
	owner identity.Identity,
	offset time.Duration,
	pickup, description string,
) *shipment.ShippingRequest {
	t.Helper()
	dims, err := shipment.NewDimensions(30, 20, 15)
	require.NoError(t, err)
	details, err := shipment.NewPackageDetails(5, dims, description)
	require.NoError(t, err)
	pickupDate, err := kernel.NewDate(2025, time.May, 21)
	require.NoError(t, err)
	deliveryDate, err := kernel.NewDate(2025, time.May, 23)
	require.NoError(t, err)

	req, err := shipment.NewShippingRequest(
		kernel.NewUUID(), owner.ID(),
		pickup, "12 Elm Street",
		details, pickupDate, deliveryDate, baseTime.Add(offset),
	)
	require.NoError(t, err)

	repo := requestrepo.NewGormShippingRequestRepository(db, &mockAggregateTracker{})
	require.NoError(t, repo.Add(context.Background(), req))
	return req
}

// quote moves a stored request to QuotationReceived.
func quote(t *testing.T, db *gorm.DB, req *shipment.ShippingRequest, amount float64) {
	t.Helper()
	money, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	require.NoError(t, req.ProvideQuotation(money, baseTime.Add(time.Hour)))

	repo := requestrepo.NewGormShippingRequestRepository(db, &mockAggregateTracker{})
	require.NoError(t, repo.Update(context.Background(), req))
}
