package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()
	validProductID := kernel.NewUUID()
	price, _ := kernel.MoneyFromString("19.99")

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 2, price)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.ProductID().IsEqual(validProductID))
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "19.99", item.UnitPrice().String())
	})

	t.Run("should compute line total", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 2, price)

		require.NoError(t, err)
		assert.Equal(t, "39.98", item.LineTotal().String())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewItem(invalidID, validProductID, 1, price)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with invalid product reference", func(t *testing.T) {
		var invalidProductID kernel.UUID

		item, err := order.NewItem(validID, invalidProductID, 1, price)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 0, price)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, -3, price)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail above maximum quantity", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 101, price)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should accept boundary quantities", func(t *testing.T) {
		minimum, err := order.NewItem(validID, validProductID, 1, price)
		require.NoError(t, err)
		assert.Equal(t, 1, minimum.Quantity())

		maximum, err := order.NewItem(validID, validProductID, 100, price)
		require.NoError(t, err)
		assert.Equal(t, 100, maximum.Quantity())
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail for zero value item", func(t *testing.T) {
		var item order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})

	t.Run("should fail for nil item", func(t *testing.T) {
		var item *order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}
