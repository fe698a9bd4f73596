package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipment"
)

// DeliveryRepository defines the persistence contract for deliveries.
// At most one delivery exists per order.
type DeliveryRepository interface {
	// Add persists a new delivery.
	Add(ctx context.Context, delivery *shipment.Delivery) error

	// GetByOrderID retrieves the delivery for an order, if one exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Delivery, error)
}

// TransactionRepository defines the persistence contract for payment
// transactions.
type TransactionRepository interface {
	// Add persists a new transaction.
	Add(ctx context.Context, transaction *payment.Transaction) error

	// GetByOrderID retrieves the transaction for an order, if one exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Transaction, error)
}
