package datagen

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipment"
)

// StatusPath returns the order status progression from Pending to target.
// Orders advance through the regular fulfillment sequence; cancelled orders
// go straight from Pending to Cancelled.
func StatusPath(target order.Status) []order.Status {
	if target == order.Cancelled {
		return []order.Status{order.Pending, order.Cancelled}
	}

	progression := []order.Status{order.Pending, order.Processing, order.Shipped, order.Delivered}
	for i, status := range progression {
		if status == target {
			return progression[:i+1]
		}
	}
	return []order.Status{order.Pending}
}

// DeliveryStatusFor maps an order status to the delivery status it implies.
func DeliveryStatusFor(status order.Status) shipment.Status {
	switch status {
	case order.Shipped:
		return shipment.InTransit
	case order.Delivered:
		return shipment.Delivered
	case order.Cancelled:
		return shipment.Failed
	default:
		return shipment.Preparing
	}
}

// DeriveDelivery builds the delivery record an order implies. The delivery
// date is set only when the delivery status involves physical movement, and
// never earlier than the order date.
func DeriveDelivery(id kernel.UUID, ord *order.Order, transitDays int) (*shipment.Delivery, error) {
	status := DeliveryStatusFor(ord.Status())

	var deliveryDate *time.Time
	if status.RequiresDeliveryDate() {
		if transitDays < 0 {
			transitDays = 0
		}
		date := ord.OrderDate().AddDate(0, 0, transitDays)
		deliveryDate = &date
	}

	return shipment.NewDelivery(id, ord.ID(), status, deliveryDate)
}

// DeriveTransaction builds the payment transaction an order implies.
func DeriveTransaction(id kernel.UUID, ord *order.Order, method payment.Method) (*payment.Transaction, error) {
	return payment.DeriveFromOrder(id, ord, method)
}
