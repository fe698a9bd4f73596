// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning flat response structures shaped for presentation.
package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("date range start must not be after its end")
)

// ListOrdersQuery retrieves order summaries for the admin order screen.
// All filters are optional; an empty query lists every order, newest first.
type ListOrdersQuery struct {
	// searchTerm filters by customer name, case-insensitive substring match
	searchTerm string

	dateFrom *time.Time
	dateTo   *time.Time

	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Pass the zero values
// (empty string, nil pointers) to leave a filter unset.
func NewListOrdersQuery(searchTerm string, dateFrom, dateTo *time.Time, status *order.Status) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		searchTerm: strings.TrimSpace(searchTerm),
		dateFrom:   dateFrom,
		dateTo:     dateTo,
		guard:      guard.NewConstructorGuard(),
	}

	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return ListOrdersQuery{}, ErrDateRangeIsInvalid
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// SearchTerm returns the customer name filter, possibly empty.
func (q ListOrdersQuery) SearchTerm() string {
	return q.searchTerm
}

// DateFrom returns the inclusive lower bound of the order date filter.
func (q ListOrdersQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive upper bound of the order date filter.
func (q ListOrdersQuery) DateTo() *time.Time {
	return q.dateTo
}

// Status returns the status filter, or nil when unset.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID           kernel.UUID
	CustomerName string
	OrderDate    time.Time
	TotalAmount  decimal.Decimal
	Status       string
}
