package http

import (
	"time"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerID        string               `json:"customerId"`
	Items             []NewOrderItem       `json:"items"`
	ShippingAddressID *string              `json:"shippingAddressId,omitempty"`
}

// NewOrderItem is one line of an order creation request.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderCreatedResponse reports the identifier and total of a new order.
type OrderCreatedResponse struct {
	OrderID     string `json:"orderId"`
	TotalAmount string `json:"totalAmount"`
}

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	OrderDate    time.Time `json:"orderDate"`
	TotalAmount  string    `json:"totalAmount"`
	Status       string    `json:"status"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:orderId/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItem is one purchased line of an order detail.
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// StatusChange is one status history entry of an order detail.
type StatusChange struct {
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Delivery is the shipment section of an order detail.
type Delivery struct {
	Status       string     `json:"status"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
}

// Transaction is the payment section of an order detail.
type Transaction struct {
	Amount          string    `json:"amount"`
	Status          string    `json:"status"`
	Method          string    `json:"method"`
	TransactionDate time.Time `json:"transactionDate"`
}

// ShippingAddress is the destination section of an order detail.
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Discount is the discount section of an order detail.
type Discount struct {
	Code    string `json:"code"`
	Percent string `json:"percent"`
}

// OrderDetail is the full response of GET /api/v1/orders/:orderId.
type OrderDetail struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	OrderDate    time.Time `json:"orderDate"`
	TotalAmount  string    `json:"totalAmount"`
	Status       string    `json:"status"`

	Items   []OrderItem    `json:"items"`
	History []StatusChange `json:"statusHistory"`

	Delivery        *Delivery        `json:"delivery,omitempty"`
	Transaction     *Transaction     `json:"transaction,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	Discount        *Discount        `json:"discount,omitempty"`
}

// NewProductRequest is the body of POST /api/v1/products.
type NewProductRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	CategoryID    string `json:"categoryId"`
	SupplierName  string `json:"supplierName"`
}

// ProductCreatedResponse reports the identifier of a new product.
type ProductCreatedResponse struct {
	ProductID string `json:"productId"`
}
