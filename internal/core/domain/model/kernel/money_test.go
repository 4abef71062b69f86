package kernel_test

import (
	"math"
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("keeps two decimals", func(t *testing.T) {
		m, err := kernel.NewMoney(49.99)

		require.NoError(t, err)
		assert.Equal(t, int64(4999), m.Cents())
		assert.InDelta(t, 49.99, m.Amount(), 1e-9)
		assert.Equal(t, "49.99", m.String())
	})

	t.Run("rounds to the nearest cent", func(t *testing.T) {
		m, err := kernel.NewMoney(19.999)

		require.NoError(t, err)
		assert.Equal(t, "20.00", m.String())
	})

	t.Run("rejects non positive amounts", func(t *testing.T) {
		for _, amount := range []float64{0, -1, -0.01, 0.004} {
			_, err := kernel.NewMoney(amount)

			require.ErrorIs(t, err, errs.ErrValidation, amount)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, amount)
		}
	})

	t.Run("rejects non finite amounts", func(t *testing.T) {
		for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := kernel.NewMoney(amount)

			require.ErrorIs(t, err, errs.ErrValidation)
		}
	})
}

func TestMoneyFromCents(t *testing.T) {
	m, err := kernel.MoneyFromCents(1000)
	require.NoError(t, err)
	assert.Equal(t, "10.00", m.String())

	_, err = kernel.MoneyFromCents(0)
	require.ErrorIs(t, err, errs.ErrValidation)

	var zero kernel.Money
	require.ErrorIs(t, zero.Validate(), kernel.ErrMoneyIsNotConstructed)
}
