package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery retrieves everything known about one order: its
// items with product names, the status history, and the optional delivery,
// transaction, shipping address and discount records.
type GetOrderDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query for a single order's detail view.
func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailQueryIsNotConstructed if validation fails.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the order being inspected.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one purchased line with its product name joined in.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// StatusChangeResponse is one status history entry.
type StatusChangeResponse struct {
	Status     string
	OccurredAt time.Time
}

// DeliveryResponse is the shipment record of an order, when one exists.
type DeliveryResponse struct {
	Status       string
	DeliveryDate *time.Time
}

// TransactionResponse is the payment record of an order, when one exists.
type TransactionResponse struct {
	Amount          decimal.Decimal
	Status          string
	Method          string
	TransactionDate time.Time
}

// ShippingAddressResponse is the address an order ships to, when one was set.
type ShippingAddressResponse struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// DiscountResponse is the discount applied to an order, when one was used.
type DiscountResponse struct {
	Code    string
	Percent decimal.Decimal
}

// OrderDetailResponse is the full detail view of one order. History is
// ordered by timestamp, newest first. Optional sections are nil when the
// corresponding record does not exist.
type OrderDetailResponse struct {
	ID           kernel.UUID
	CustomerName string
	OrderDate    time.Time
	TotalAmount  decimal.Decimal
	Status       string

	Items   []OrderItemResponse
	History []StatusChangeResponse

	Delivery        *DeliveryResponse
	Transaction     *TransactionResponse
	ShippingAddress *ShippingAddressResponse
	Discount        *DiscountResponse
}
