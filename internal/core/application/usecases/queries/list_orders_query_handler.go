package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries straight from the database,
// joining the customer name in for display.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are ordered by order date,
// newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			c.name,
			o.order_date,
			o.total_amount,
			o.status
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
	`
	args := make([]any, 0, 4)
	conditions := make([]string, 0, 4)

	if query.SearchTerm() != "" {
		conditions = append(conditions, "c.name ILIKE ?")
		args = append(args, "%"+query.SearchTerm()+"%")
	}
	if query.DateFrom() != nil {
		conditions = append(conditions, "o.order_date >= ?")
		args = append(args, *query.DateFrom())
	}
	if query.DateTo() != nil {
		conditions = append(conditions, "o.order_date <= ?")
		args = append(args, *query.DateTo())
	}
	if query.Status() != nil {
		conditions = append(conditions, "o.status = ?")
		args = append(args, query.Status().String())
	}

	for i, condition := range conditions {
		if i == 0 {
			sql += " WHERE " + condition
		} else {
			sql += " AND " + condition
		}
	}
	sql += " ORDER BY o.order_date DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID
		var customerName string
		var orderDate time.Time
		var totalAmount decimal.Decimal
		var status string

		err = rows.Scan(
			&id,
			&customerName,
			&orderDate,
			&totalAmount,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		summary.ID = orderID
		summary.CustomerName = customerName
		summary.OrderDate = orderDate
		summary.TotalAmount = totalAmount
		summary.Status = status
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
