package catalog_test

import (
	"testing"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price, _ := kernel.MoneyFromString("19.99")

	t.Run("should create valid product", func(t *testing.T) {
		id := kernel.NewUUID()
		categoryID := kernel.NewUUID()
		supplierID := kernel.NewUUID()

		p, err := catalog.NewProduct(id, "Wireless Mouse", "Slim 2.4 GHz mouse", price, 40, categoryID, supplierID)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Wireless Mouse", p.Name())
		assert.Equal(t, "Slim 2.4 GHz mouse", p.Description())
		assert.Equal(t, "19.99", p.Price().String())
		assert.Equal(t, 40, p.StockQuantity())
		assert.True(t, p.CategoryID().IsEqual(categoryID))
		assert.True(t, p.SupplierID().IsEqual(supplierID))
	})

	t.Run("should allow empty description and zero stock", func(t *testing.T) {
		p, err := catalog.NewProduct(kernel.NewUUID(), "Cable", "", price, 0, kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, 0, p.StockQuantity())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		p, err := catalog.NewProduct(kernel.NewUUID(), "   ", "", price, 1, kernel.NewUUID(), kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		p, err := catalog.NewProduct(kernel.NewUUID(), "Cable", "", price, -1, kernel.NewUUID(), kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with unresolved references", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := catalog.NewProduct(kernel.NewUUID(), "Cable", "", price, 1, invalidID, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should reject not constructed product", func(t *testing.T) {
		var p catalog.Product

		require.ErrorIs(t, p.Validate(), catalog.ErrProductIsNotConstructed)
	})
}

func TestNewSupplier(t *testing.T) {
	t.Run("should create supplier with contact details", func(t *testing.T) {
		s, err := catalog.NewSupplier(kernel.NewUUID(), "Acme Wholesale", "sales@acme.test", "+1 555 0100")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Acme Wholesale", s.Name())
		assert.Equal(t, "sales@acme.test", s.Email())
		assert.Equal(t, "+1 555 0100", s.Phone())
	})

	t.Run("should create supplier with empty contact fields", func(t *testing.T) {
		s, err := catalog.NewSupplier(kernel.NewUUID(), "Acme Wholesale", "", "")

		require.NoError(t, err)
		assert.Empty(t, s.Email())
		assert.Empty(t, s.Phone())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		s, err := catalog.NewSupplier(kernel.NewUUID(), "", "", "")

		require.Error(t, err)
		assert.Nil(t, s)
	})
}
