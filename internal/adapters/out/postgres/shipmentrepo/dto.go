// Package shipmentrepo provides persistence for delivery records.
package shipmentrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// The order reference is unique: at most one delivery exists per order.
type DeliveryDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Status       string     `gorm:"type:varchar(16)"`
	DeliveryDate *time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(delivery *shipment.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           delivery.ID().Bytes(),
		OrderID:      delivery.OrderID().Bytes(),
		Status:       delivery.Status().String(),
		DeliveryDate: delivery.DeliveryDate(),
	}
}

func toDomain(dto DeliveryDTO) (*shipment.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreDelivery(id, orderID, status, dto.DeliveryDate)
}
