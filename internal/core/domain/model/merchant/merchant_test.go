package merchant_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPostalCode(t *testing.T, value string) kernel.PostalCode {
	t.Helper()
	code, err := kernel.NewPostalCode(value)
	require.NoError(t, err)
	return code
}

func newTestMerchant(t *testing.T, profile merchant.DeliveryProfile) *merchant.Merchant {
	t.Helper()
	m, err := merchant.NewMerchant(kernel.NewUUID(), "Tian Tian Chicken Rice", mustPostalCode(t, "238874"), profile)
	require.NoError(t, err)
	return m
}

func TestNewMerchant(t *testing.T) {
	t.Run("should create merchant with valid data", func(t *testing.T) {
		m := newTestMerchant(t, merchant.DeliveryProfile{
			DeliveryEnabled:    true,
			PickupEnabled:      true,
			DeliveryRadiusKm:   8,
			MinimumOrder:       15,
			DeliveryFee:        4,
			PreparationMinutes: 25,
		})

		require.NoError(t, m.Validate())
		assert.Equal(t, "Tian Tian Chicken Rice", m.Name())
		assert.True(t, m.DeliveryEnabled())
		assert.Equal(t, kernel.Central, m.Zone())
		assert.Equal(t, 25, m.PreparationMinutes())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := merchant.NewMerchant(kernel.NewUUID(), "", mustPostalCode(t, "238874"), merchant.DeliveryProfile{})

		require.Error(t, err)
		require.ErrorIs(t, err, merchant.ErrNameIsRequired)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := merchant.NewMerchant(kernel.UUID{}, "Stall", mustPostalCode(t, "238874"), merchant.DeliveryProfile{})
		require.Error(t, err)
	})

	t.Run("should reject negative profile values", func(t *testing.T) {
		_, err := merchant.NewMerchant(
			kernel.NewUUID(), "Stall", mustPostalCode(t, "238874"),
			merchant.DeliveryProfile{DeliveryRadiusKm: -1, MinimumOrder: -2},
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m merchant.Merchant

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, merchant.ErrMerchantIsNotConstructed, err)
	})
}

func TestMerchant_PreparationMinutes(t *testing.T) {
	t.Run("defaults to 30 when unset", func(t *testing.T) {
		m := newTestMerchant(t, merchant.DeliveryProfile{DeliveryEnabled: true})
		assert.Equal(t, merchant.DefaultPreparationMinutes, m.PreparationMinutes())
	})
}

func TestMerchant_FallbackFlatRate(t *testing.T) {
	t.Run("prefers the flat settings rate", func(t *testing.T) {
		settings, err := merchant.NewFlatSettings(merchant.FlatConfig{FlatRate: 6.5}, nil)
		require.NoError(t, err)

		m := newTestMerchant(t, merchant.DeliveryProfile{DeliveryFee: 4, Settings: &settings})

		assert.InDelta(t, 6.5, m.FallbackFlatRate(), 1e-9)
	})

	t.Run("falls back to the merchant delivery fee", func(t *testing.T) {
		m := newTestMerchant(t, merchant.DeliveryProfile{DeliveryFee: 4})

		assert.InDelta(t, 4.0, m.FallbackFlatRate(), 1e-9)
	})

	t.Run("falls back to the default rate last", func(t *testing.T) {
		m := newTestMerchant(t, merchant.DeliveryProfile{})

		assert.InDelta(t, merchant.DefaultFlatRate, m.FallbackFlatRate(), 1e-9)
	})
}

func TestMerchant_FreeDeliveryMinimum(t *testing.T) {
	t.Run("prefers the settings threshold", func(t *testing.T) {
		threshold := 40.0
		settings, err := merchant.NewFlatSettings(merchant.FlatConfig{FlatRate: 5}, &threshold)
		require.NoError(t, err)

		m := newTestMerchant(t, merchant.DeliveryProfile{MinimumOrder: 15, Settings: &settings})

		minimum, ok := m.FreeDeliveryMinimum()
		require.True(t, ok)
		assert.InDelta(t, 40.0, minimum, 1e-9)
	})

	t.Run("falls back to the minimum order", func(t *testing.T) {
		m := newTestMerchant(t, merchant.DeliveryProfile{MinimumOrder: 15})

		minimum, ok := m.FreeDeliveryMinimum()
		require.True(t, ok)
		assert.InDelta(t, 15.0, minimum, 1e-9)
	})

	t.Run("no threshold when nothing is configured", func(t *testing.T) {
		m := newTestMerchant(t, merchant.DeliveryProfile{})

		_, ok := m.FreeDeliveryMinimum()
		assert.False(t, ok)
	})
}

func TestMerchant_CheckMinimumOrder(t *testing.T) {
	m := newTestMerchant(t, merchant.DeliveryProfile{MinimumOrder: 20})

	t.Run("subtotal at the minimum passes", func(t *testing.T) {
		require.NoError(t, m.CheckMinimumOrder(20))
	})

	t.Run("subtotal below the minimum carries the shortfall", func(t *testing.T) {
		err := m.CheckMinimumOrder(12.5)

		require.Error(t, err)
		var notMet *merchant.MinimumOrderNotMetError
		require.ErrorAs(t, err, &notMet)
		assert.InDelta(t, 7.5, notMet.Shortfall(), 1e-9)
	})
}
