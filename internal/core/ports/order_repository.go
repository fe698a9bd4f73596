package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The order row, its items and its status history are stored and loaded
// together.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and the seeded
	// status history record.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Only the
	// status field and newly appended history records change after
	// creation; items are immutable.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// items and the full status history in ascending timestamp order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
