package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without any lines.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order represents a customer order in the storefront. It is the aggregate
// root that owns the order lines and the append-only status history, and it
// is the single place where status mutations happen.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must have at least one item
//   - Total amount equals the sum of item line extensions, net of any
//     applied discount, computed once at creation
//   - Every status mutation appends exactly one history record; the most
//     recent record always equals the current status
//   - History timestamps are never earlier than the order date
//   - Orders are never deleted
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the owning customer
	customerID kernel.UUID

	// orderDate is when the order was placed
	orderDate time.Time

	// totalAmount is the order total fixed at creation
	totalAmount kernel.Money

	// status is the current lifecycle state
	status Status

	// discountID references the applied discount, if any
	discountID *kernel.UUID

	// shippingAddressID references the customer's shipping address, if any
	shippingAddressID *kernel.UUID

	// items are the order lines with snapshotted prices
	items []*Item

	// history is the append-only status log, ascending by time
	history []StatusRecord

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order at checkout. This is the only way to create
// an order, ensuring all business invariants hold from the start.
//
// The total amount is computed here as the sum of the items' line extensions
// (unit price × quantity), reduced by the discount percentage when a
// discount is applied. The order starts in Pending status and the history is
// seeded with a Pending record dated at the order date, so the
// most-recent-history-equals-current-status invariant holds even before the
// first mutation.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the owning customer
//   - orderDate: when the order was placed (must not be zero)
//   - items: at least one order line, already validated and price-snapshotted
//   - discount: optional applied discount
//   - shippingAddressID: optional shipping address reference
//
// Returns the created order, or a validation error if any parameter is
// invalid. No error leaves a partially initialized order behind.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderDate time.Time,
	items []*Item,
	discount *AppliedDiscount,
	shippingAddressID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setOrderDate(orderDate),
		order.setItems(items),
		order.setDiscount(discount),
		order.setShippingAddressID(shippingAddressID),
	); err != nil {
		return nil, err
	}

	order.totalAmount = order.computeTotal(discount)

	initial, err := NewStatusRecord(kernel.NewUUID(), Pending, order.orderDate)
	if err != nil {
		return nil, err
	}
	order.history = []StatusRecord{initial}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// does not recompute the total or seed history; the stored values are taken
// as-is after basic validation. The history must be supplied in ascending
// timestamp order with its last record matching the stored status.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderDate time.Time,
	totalAmount kernel.Money,
	status Status,
	discountID *kernel.UUID,
	shippingAddressID *kernel.UUID,
	items []*Item,
	history []StatusRecord,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if orderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderDate")
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	if len(history) > 0 && history[len(history)-1].Status() != status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status history is invalid",
			fmt.Errorf("last history status %s does not match current status %s",
				history[len(history)-1].Status(), status),
		)
	}

	return &Order{
		id:                id,
		customerID:        customerID,
		orderDate:         orderDate,
		totalAmount:       totalAmount,
		status:            status,
		discountID:        discountID,
		shippingAddressID: shippingAddressID,
		items:             items,
		history:           history,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// TotalAmount returns the order total fixed at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DiscountID returns the applied discount's identifier.
// Returns nil if no discount was applied.
func (o *Order) DiscountID() *kernel.UUID {
	return o.discountID
}

// ShippingAddressID returns the shipping address reference.
// Returns nil if the order carries no address.
func (o *Order) ShippingAddressID() *kernel.UUID {
	return o.shippingAddressID
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// History returns the status history in ascending timestamp order.
func (o *Order) History() []StatusRecord {
	return o.history
}

// ChangeStatus moves the order to the requested status and appends exactly
// one history record with the given timestamp. Both the field update and
// the history append happen on the in-memory aggregate; the repository
// persists them as one atomic unit.
//
// When the requested status equals the current status the call is a no-op:
// no history record is appended and the returned changed flag is false.
//
// There is no transition graph: any valid status may follow any other.
// The timestamp must not precede the order date.
//
// Returns:
//   - (true, nil) when the status changed and a record was appended
//   - (false, nil) when the requested status equals the current one
//   - (false, error) when the status value or timestamp is invalid
func (o *Order) ChangeStatus(newStatus Status, at time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if err := newStatus.Validate(); err != nil {
		return false, err
	}
	if at.Before(o.orderDate) {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"status change time is invalid",
			fmt.Errorf("%s is before the order date %s", at.Format(time.RFC3339), o.orderDate.Format(time.RFC3339)),
		)
	}

	if newStatus == o.status {
		return false, nil
	}

	record, err := NewStatusRecord(kernel.NewUUID(), newStatus, at)
	if err != nil {
		return false, err
	}

	o.status = newStatus
	o.history = append(o.history, record)
	return true, nil
}

// computeTotal sums the line extensions and applies the discount, if any.
func (o *Order) computeTotal(discount *AppliedDiscount) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	if discount != nil {
		total = total.ApplyDiscountPercent(discount.Percent())
	}
	return total
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setOrderDate validates and sets the order date.
func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

// setItems validates and sets the order lines. At least one line is
// required; each line must have been constructed through NewItem.
func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

// setDiscount validates and records the applied discount reference.
func (o *Order) setDiscount(discount *AppliedDiscount) error {
	if discount == nil {
		return nil
	}
	if !discount.isConstructed {
		return errs.NewValueIsInvalidError("discount must be created via NewAppliedDiscount")
	}
	id := discount.ID()
	o.discountID = &id
	return nil
}

// setShippingAddressID validates and sets the optional address reference.
func (o *Order) setShippingAddressID(addressID *kernel.UUID) error {
	if addressID == nil {
		return nil
	}
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.shippingAddressID = addressID
	return nil
}
