package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item quantity bounds. The upper bound matches the maximum a single order
// line can carry through the ordering flow.
const (
	minItemQuantity = 1
	maxItemQuantity = 100
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line owned by exactly one Order. It references a catalog
// product and captures the unit price as it was at order time: later catalog
// price changes never affect an existing order.
//
// Item invariants:
//   - Must have a valid unique identifier and product reference
//   - Quantity is between 1 and 100 inclusive
//   - Unit price is the snapshot taken when the order was created
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewItem creates a new order line with validation.
//
// Parameters:
//   - id: unique identifier for the line
//   - productID: the referenced catalog product (must resolve at order time;
//     the caller performs the catalog lookup)
//   - quantity: number of units, 1..100
//   - unitPrice: the product's price captured at call time
//
// Returns the created Item, or a validation error if any parameter is
// invalid.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units on the line.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price snapshotted at order time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns the line extension: unit price × quantity.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < minItemQuantity || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, minItemQuantity, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	i.unitPrice = unitPrice
	return nil
}
