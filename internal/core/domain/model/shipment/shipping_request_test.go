package shipment_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.DateFromString(s)
	require.NoError(t, err)
	return d
}

func validPackage(t *testing.T) shipment.PackageDetails {
	t.Helper()
	dims, err := shipment.NewDimensions(30, 20, 15)
	require.NoError(t, err)
	p, err := shipment.NewPackageDetails(5, dims, "two boxes of books")
	require.NoError(t, err)
	return p
}

func newRequest(t *testing.T) *shipment.ShippingRequest {
	t.Helper()
	req, err := shipment.NewShippingRequest(
		kernel.NewUUID(), kernel.NewUUID(),
		"Dorm A, room 12", "12 Elm Street",
		validPackage(t),
		mustDate(t, "2025-06-01"), mustDate(t, "2025-06-05"),
		submittedAt,
	)
	require.NoError(t, err)
	return req
}

func TestNewShippingRequest(t *testing.T) {
	t.Run("should create request waiting for quotation", func(t *testing.T) {
		id := kernel.NewUUID()
		owner := kernel.NewUUID()

		req, err := shipment.NewShippingRequest(
			id, owner,
			" Dorm A, room 12 ", "12 Elm Street",
			validPackage(t),
			mustDate(t, "2025-06-01"), mustDate(t, "2025-06-05"),
			submittedAt,
		)

		require.NoError(t, err)
		require.NoError(t, req.Validate())
		assert.True(t, id.IsEqual(req.ID()))
		assert.True(t, req.IsOwnedBy(owner))
		assert.False(t, req.IsOwnedBy(kernel.NewUUID()))
		assert.Equal(t, "Dorm A, room 12", req.PickupAddress())
		assert.Equal(t, "12 Elm Street", req.DeliveryAddress())
		assert.Equal(t, shipment.WaitingForQuotation, req.Status())
		assert.Nil(t, req.Quotation())
		assert.Equal(t, shipment.InitialVersion, req.Version())
		assert.Equal(t, submittedAt, req.CreatedAt())
	})

	t.Run("should accept same day pickup and delivery on submission day", func(t *testing.T) {
		_, err := shipment.NewShippingRequest(
			kernel.NewUUID(), kernel.NewUUID(),
			"A", "B", validPackage(t),
			mustDate(t, "2025-05-20"), mustDate(t, "2025-05-20"),
			submittedAt,
		)

		require.NoError(t, err)
	})

	t.Run("should reject delivery before pickup", func(t *testing.T) {
		_, err := shipment.NewShippingRequest(
			kernel.NewUUID(), kernel.NewUUID(),
			"A", "B", validPackage(t),
			mustDate(t, "2025-06-05"), mustDate(t, "2025-06-01"),
			submittedAt,
		)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "preferred delivery date")
	})

	t.Run("should reject pickup before submission date", func(t *testing.T) {
		_, err := shipment.NewShippingRequest(
			kernel.NewUUID(), kernel.NewUUID(),
			"A", "B", validPackage(t),
			mustDate(t, "2025-05-19"), mustDate(t, "2025-06-01"),
			submittedAt,
		)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "preferred pickup date")
	})

	t.Run("should reject blank addresses", func(t *testing.T) {
		_, err := shipment.NewShippingRequest(
			kernel.NewUUID(), kernel.NewUUID(),
			"  ", "", validPackage(t),
			mustDate(t, "2025-06-01"), mustDate(t, "2025-06-05"),
			submittedAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "pickup address")
		assert.Contains(t, err.Error(), "delivery address")
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		_, err := shipment.NewShippingRequest(
			kernel.UUID{}, kernel.UUID{},
			"A", "B", validPackage(t),
			mustDate(t, "2025-06-01"), mustDate(t, "2025-06-05"),
			submittedAt,
		)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestShippingRequest_Validate(t *testing.T) {
	var req *shipment.ShippingRequest
	require.ErrorIs(t, req.Validate(), shipment.ErrShippingRequestIsNotConstructed)

	require.ErrorIs(t, (&shipment.ShippingRequest{}).Validate(), shipment.ErrShippingRequestIsNotConstructed)
}

func TestShippingRequest_ProvideQuotation(t *testing.T) {
	amount, err := kernel.NewMoney(49.99)
	require.NoError(t, err)
	quotedAt := submittedAt.Add(2 * time.Hour)

	t.Run("should move to quotation received", func(t *testing.T) {
		req := newRequest(t)

		err := req.ProvideQuotation(amount, quotedAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.QuotationReceived, req.Status())
		require.NotNil(t, req.Quotation())
		assert.Equal(t, "49.99", req.Quotation().Amount().String())
		assert.Equal(t, quotedAt, req.Quotation().ProvidedAt())
	})

	t.Run("should never quote twice", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.ProvideQuotation(amount, quotedAt))
		other, _ := kernel.NewMoney(10)

		err := req.ProvideQuotation(other, quotedAt.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "49.99", req.Quotation().Amount().String())
	})

	t.Run("should reject an unconstructed amount without changing state", func(t *testing.T) {
		req := newRequest(t)

		err := req.ProvideQuotation(kernel.Money{}, quotedAt)

		require.Error(t, err)
		assert.Equal(t, shipment.WaitingForQuotation, req.Status())
		assert.Nil(t, req.Quotation())
	})

	t.Run("returned quotation is a copy", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.ProvideQuotation(amount, quotedAt))

		q := req.Quotation()
		*q = shipment.Quotation{}

		require.NotNil(t, req.Quotation())
		assert.Equal(t, "49.99", req.Quotation().Amount().String())
	})
}

func TestShippingRequest_Respond(t *testing.T) {
	amount, _ := kernel.NewMoney(49.99)

	t.Run("should accept quotation", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.ProvideQuotation(amount, submittedAt))

		require.NoError(t, req.Respond(true))
		assert.Equal(t, shipment.Accepted, req.Status())
		assert.NotNil(t, req.Quotation())
	})

	t.Run("should reject quotation", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.ProvideQuotation(amount, submittedAt))

		require.NoError(t, req.Respond(false))
		assert.Equal(t, shipment.Rejected, req.Status())
	})

	t.Run("should not respond before quotation", func(t *testing.T) {
		req := newRequest(t)

		require.ErrorIs(t, req.Respond(true), errs.ErrInvalidState)
		assert.Equal(t, shipment.WaitingForQuotation, req.Status())
	})

	t.Run("terminal state holds", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.ProvideQuotation(amount, submittedAt))
		require.NoError(t, req.Respond(true))

		require.ErrorIs(t, req.Respond(true), errs.ErrInvalidState)
		require.ErrorIs(t, req.Respond(false), errs.ErrInvalidState)
		require.ErrorIs(t, req.ProvideQuotation(amount, submittedAt), errs.ErrInvalidState)
		assert.Equal(t, shipment.Accepted, req.Status())
	})
}

func TestRestoreShippingRequest(t *testing.T) {
	amount, _ := kernel.NewMoney(12.5)
	quotation, err := shipment.NewQuotation(amount, submittedAt)
	require.NoError(t, err)

	restore := func(status shipment.Status, q *shipment.Quotation, pickup string, version int) (*shipment.ShippingRequest, error) {
		return shipment.RestoreShippingRequest(
			kernel.NewUUID(), kernel.NewUUID(),
			"A", "B", validPackage(t),
			mustDate(t, pickup), mustDate(t, "2025-06-05"),
			status, q, submittedAt, version,
		)
	}

	t.Run("should restore quoted request with past dates", func(t *testing.T) {
		req, err := restore(shipment.Accepted, &quotation, "2020-01-01", 3)

		require.NoError(t, err)
		assert.Equal(t, shipment.Accepted, req.Status())
		assert.Equal(t, 3, req.Version())
		assert.Equal(t, int64(1250), req.Quotation().Amount().Cents())
	})

	t.Run("should enforce quotation presence invariant", func(t *testing.T) {
		_, err := restore(shipment.QuotationReceived, nil, "2025-06-01", 2)
		require.ErrorIs(t, err, errs.ErrValidation)

		_, err = restore(shipment.WaitingForQuotation, &quotation, "2025-06-01", 2)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject unknown status and bad version", func(t *testing.T) {
		_, err := restore(shipment.Unknown, nil, "2025-06-01", 1)
		require.Error(t, err)

		_, err = restore(shipment.WaitingForQuotation, nil, "2025-06-01", 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
