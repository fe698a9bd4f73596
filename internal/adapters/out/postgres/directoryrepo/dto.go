// Package directoryrepo holds the reference-data tables order processing
// points into: customers, their addresses, and discount codes. These rows
// are written by data generation and read by queries; the order component
// never mutates them.
package directoryrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for customers.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255)"`
	Email string    `gorm:"type:varchar(255)"`
	Phone string    `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// CustomerAddressDTO represents the database structure for customer addresses.
type CustomerAddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Street     string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(128)"`
	State      string    `gorm:"type:varchar(128)"`
	PostalCode string    `gorm:"type:varchar(32)"`
	Country    string    `gorm:"type:varchar(128)"`
}

// TableName specifies the database table name for customer address entities.
func (CustomerAddressDTO) TableName() string {
	return "customer_addresses"
}

// DiscountDTO represents the database structure for discount codes.
type DiscountDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code        string          `gorm:"type:varchar(32);uniqueIndex"`
	Description string          `gorm:"type:text"`
	Percent     decimal.Decimal `gorm:"type:numeric(5,2)"`
	ValidFrom   time.Time
	ValidTo     time.Time
}

// TableName specifies the database table name for discount entities.
func (DiscountDTO) TableName() string {
	return "discounts"
}
