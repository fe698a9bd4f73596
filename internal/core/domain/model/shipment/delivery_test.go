package shipment_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all known values", func(t *testing.T) {
		tests := map[string]shipment.Status{
			"Preparing":  shipment.Preparing,
			"Shipped":    shipment.Shipped,
			"In Transit": shipment.InTransit,
			"Delivered":  shipment.Delivered,
			"Failed":     shipment.Failed,
		}

		for value, expected := range tests {
			status, err := shipment.StatusFromString(value)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
			assert.Equal(t, value, status.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, value := range []string{"", "preparing", "SHIPPED", "Lost"} {
			_, err := shipment.StatusFromString(value)
			require.Error(t, err)
		}
	})
}

func TestStatus_RequiresDeliveryDate(t *testing.T) {
	assert.False(t, shipment.Preparing.RequiresDeliveryDate())
	assert.True(t, shipment.Shipped.RequiresDeliveryDate())
	assert.True(t, shipment.InTransit.RequiresDeliveryDate())
	assert.True(t, shipment.Delivered.RequiresDeliveryDate())
	assert.False(t, shipment.Failed.RequiresDeliveryDate())
}

func TestNewDelivery(t *testing.T) {
	deliveredAt := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("should create delivery with date for moving statuses", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Shipped, shipment.InTransit, shipment.Delivered} {
			d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), status, &deliveredAt)

			require.NoError(t, err)
			require.NoError(t, d.Validate())
			assert.Equal(t, status, d.Status())
			require.NotNil(t, d.DeliveryDate())
			assert.Equal(t, deliveredAt, *d.DeliveryDate())
		}
	})

	t.Run("should create delivery without date for stationary statuses", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Preparing, shipment.Failed} {
			d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), status, nil)

			require.NoError(t, err)
			assert.Nil(t, d.DeliveryDate())
		}
	})

	t.Run("should fail when moving status has no date", func(t *testing.T) {
		d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), shipment.Shipped, nil)

		require.Error(t, err)
		assert.Nil(t, d)
		require.ErrorIs(t, err, shipment.ErrDeliveryDateIsMissing)
	})

	t.Run("should fail when stationary status has a date", func(t *testing.T) {
		d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), shipment.Preparing, &deliveredAt)

		require.Error(t, err)
		assert.Nil(t, d)
		require.ErrorIs(t, err, shipment.ErrDeliveryDateIsUnexpected)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), shipment.Unknown, nil)

		require.Error(t, err)
		assert.Nil(t, d)
	})

	t.Run("should fail with invalid order reference", func(t *testing.T) {
		var invalidOrderID kernel.UUID

		d, err := shipment.NewDelivery(kernel.NewUUID(), invalidOrderID, shipment.Preparing, nil)

		require.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestDelivery_ChangeStatus(t *testing.T) {
	deliveredAt := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("should move from preparing to shipped with a date", func(t *testing.T) {
		d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), shipment.Preparing, nil)
		require.NoError(t, err)

		err = d.ChangeStatus(shipment.Shipped, &deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.Shipped, d.Status())
		require.NotNil(t, d.DeliveryDate())
	})

	t.Run("should clear the date when delivery fails", func(t *testing.T) {
		d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), shipment.InTransit, &deliveredAt)
		require.NoError(t, err)

		err = d.ChangeStatus(shipment.Failed, nil)

		require.NoError(t, err)
		assert.Equal(t, shipment.Failed, d.Status())
		assert.Nil(t, d.DeliveryDate())
	})

	t.Run("should keep state on invalid change", func(t *testing.T) {
		d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), shipment.Preparing, nil)
		require.NoError(t, err)

		err = d.ChangeStatus(shipment.Delivered, nil)

		require.Error(t, err)
		assert.Equal(t, shipment.Preparing, d.Status())
	})

	t.Run("should reject not constructed delivery", func(t *testing.T) {
		var d shipment.Delivery

		err := d.ChangeStatus(shipment.Shipped, &deliveredAt)

		require.ErrorIs(t, err, shipment.ErrDeliveryIsNotConstructed)
	})
}
