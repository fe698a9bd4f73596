package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler assembles the detail view of one order from
// its row and the dependent records keyed by the order identifier.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle executes the detail query. Returns an ObjectNotFoundError when
// the order does not exist. Missing dependent records are not errors; the
// corresponding response sections stay nil.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().Bytes()

	detail, err := h.readOrderRow(db, orderID)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	if detail.Items, err = h.readItems(db, orderID); err != nil {
		return OrderDetailResponse{}, err
	}
	if detail.History, err = h.readHistory(db, orderID); err != nil {
		return OrderDetailResponse{}, err
	}
	if detail.Delivery, err = h.readDelivery(db, orderID); err != nil {
		return OrderDetailResponse{}, err
	}
	if detail.Transaction, err = h.readTransaction(db, orderID); err != nil {
		return OrderDetailResponse{}, err
	}

	return detail, nil
}

func (h GetOrderDetailQueryHandler) readOrderRow(db *gorm.DB, orderID uuid.UUID) (OrderDetailResponse, error) {
	row := db.Raw(`
		SELECT
			o.id,
			c.name,
			o.order_date,
			o.total_amount,
			o.status,
			a.street,
			a.city,
			a.state,
			a.postal_code,
			a.country,
			d.code,
			d.percent
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		LEFT JOIN customer_addresses a ON o.shipping_address_id = a.id
		LEFT JOIN discounts d ON o.discount_id = d.id
		WHERE o.id = ?
	`, orderID).Row()

	var detail OrderDetailResponse
	var id uuid.UUID
	var street, city, state, postalCode, country, code sql.NullString
	var percent decimal.NullDecimal

	err := row.Scan(
		&id,
		&detail.CustomerName,
		&detail.OrderDate,
		&detail.TotalAmount,
		&detail.Status,
		&street,
		&city,
		&state,
		&postalCode,
		&country,
		&code,
		&percent,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderId", orderID)
	}
	if err != nil {
		return OrderDetailResponse{}, err
	}

	detailID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	detail.ID = detailID

	if street.Valid {
		detail.ShippingAddress = &ShippingAddressResponse{
			Street:     street.String,
			City:       city.String,
			State:      state.String,
			PostalCode: postalCode.String,
			Country:    country.String,
		}
	}
	if code.Valid {
		detail.Discount = &DiscountResponse{
			Code:    code.String,
			Percent: percent.Decimal,
		}
	}

	return detail, nil
}

func (h GetOrderDetailQueryHandler) readItems(db *gorm.DB, orderID uuid.UUID) ([]OrderItemResponse, error) {
	rows, err := db.Raw(`
		SELECT
			oi.product_id,
			p.name,
			oi.quantity,
			oi.unit_price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = ?
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = itemProductID
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderDetailQueryHandler) readHistory(db *gorm.DB, orderID uuid.UUID) ([]StatusChangeResponse, error) {
	rows, err := db.Raw(`
		SELECT
			status,
			occurred_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY occurred_at DESC
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeResponse, 0)
	for rows.Next() {
		var change StatusChangeResponse
		if err = rows.Scan(&change.Status, &change.OccurredAt); err != nil {
			return nil, err
		}
		history = append(history, change)
	}

	return history, rows.Err()
}

func (h GetOrderDetailQueryHandler) readDelivery(db *gorm.DB, orderID uuid.UUID) (*DeliveryResponse, error) {
	row := db.Raw(`
		SELECT
			status,
			delivery_date
		FROM deliveries
		WHERE order_id = ?
	`, orderID).Row()

	var delivery DeliveryResponse
	var deliveryDate sql.NullTime

	err := row.Scan(&delivery.Status, &deliveryDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if deliveryDate.Valid {
		date := deliveryDate.Time
		delivery.DeliveryDate = &date
	}

	return &delivery, nil
}

func (h GetOrderDetailQueryHandler) readTransaction(db *gorm.DB, orderID uuid.UUID) (*TransactionResponse, error) {
	row := db.Raw(`
		SELECT
			amount,
			status,
			method,
			transaction_date
		FROM transactions
		WHERE order_id = ?
	`, orderID).Row()

	var transaction TransactionResponse
	var transactionDate time.Time

	err := row.Scan(&transaction.Amount, &transaction.Status, &transaction.Method, &transactionDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	transaction.TransactionDate = transactionDate
	return &transaction, nil
}
