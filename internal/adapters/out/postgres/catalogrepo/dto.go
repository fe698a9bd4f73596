// Package catalogrepo provides persistence for the product catalog:
// products, suppliers and categories.
package catalogrepo

import (
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255)"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	StockQuantity int
	CategoryID    uuid.UUID `gorm:"type:uuid;index"`
	SupplierID    uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// SupplierDTO represents the database structure for persisting suppliers.
// The name is unique; the supplier upsert resolves by exact name match.
type SupplierDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);uniqueIndex"`
	Email string    `gorm:"type:varchar(255)"`
	Phone string    `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for supplier entities.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

func productFromDomain(product *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:            product.ID().Bytes(),
		Name:          product.Name(),
		Description:   product.Description(),
		Price:         product.Price().Decimal(),
		StockQuantity: product.StockQuantity(),
		CategoryID:    product.CategoryID().Bytes(),
		SupplierID:    product.SupplierID().Bytes(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.MoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(id, dto.Name, dto.Description, price, dto.StockQuantity, categoryID, supplierID)
}
