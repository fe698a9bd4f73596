// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order row owns its items and status history rows; both are written
// and loaded together with the order.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;index"`
	OrderDate         time.Time       `gorm:"index"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status            string          `gorm:"type:varchar(16);index"`
	DiscountID        *uuid.UUID      `gorm:"type:uuid"`
	ShippingAddressID *uuid.UUID      `gorm:"type:uuid"`

	Items   []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one purchased line with the unit price captured
// at order time.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;index"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO represents one append-only status history entry.
type StatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Status     string    `gorm:"type:varchar(16)"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for status history entities.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var discountID *uuid.UUID
	if id := aggregate.DiscountID(); id != nil {
		raw := id.Bytes()
		discountID = &raw
	}

	var addressID *uuid.UUID
	if id := aggregate.ShippingAddressID(); id != nil {
		raw := id.Bytes()
		addressID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	history := make([]StatusHistoryDTO, 0, len(aggregate.History()))
	for _, record := range aggregate.History() {
		history = append(history, StatusHistoryDTO{
			ID:         record.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			Status:     record.Status().String(),
			OccurredAt: record.OccurredAt(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		OrderDate:         aggregate.OrderDate(),
		TotalAmount:       aggregate.TotalAmount().Decimal(),
		Status:            aggregate.Status().String(),
		DiscountID:        discountID,
		ShippingAddressID: addressID,
		Items:             items,
		History:           history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var discountID *kernel.UUID
	if dto.DiscountID != nil {
		dID, discountErr := kernel.UUIDFromBytes((*dto.DiscountID)[:])
		if discountErr != nil {
			return nil, discountErr
		}
		discountID = &dID
	}

	var addressID *kernel.UUID
	if dto.ShippingAddressID != nil {
		aID, addressErr := kernel.UUIDFromBytes((*dto.ShippingAddressID)[:])
		if addressErr != nil {
			return nil, addressErr
		}
		addressID = &aID
	}

	totalAmount, err := kernel.MoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusRecord, 0, len(dto.History))
	for _, recordDTO := range dto.History {
		record, recordErr := historyToDomain(recordDTO)
		if recordErr != nil {
			return nil, recordErr
		}
		history = append(history, record)
	}

	return order.RestoreOrder(id, customerID, dto.OrderDate, totalAmount, status, discountID, addressID, items, history)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.MoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.NewItem(id, productID, dto.Quantity, unitPrice)
}

func historyToDomain(dto StatusHistoryDTO) (order.StatusRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusRecord{}, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.StatusRecord{}, err
	}

	return order.NewStatusRecord(id, status, dto.OccurredAt)
}
