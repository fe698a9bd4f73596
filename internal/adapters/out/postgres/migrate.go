package postgres

import (
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/directoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/paymentrepo"
	"storefront/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the full relational schema. Reference tables
// come first so the order tables can point into them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&directoryrepo.CustomerDTO{},
		&directoryrepo.CustomerAddressDTO{},
		&directoryrepo.DiscountDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.SupplierDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
		&shipmentrepo.DeliveryDTO{},
		&paymentrepo.TransactionDTO{},
	)
}
