// Package cart models the pending selection a customer carries through a
// session before checking out. A cart is explicit per-session state passed
// into order creation, never shared between sessions.
package cart

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Line is one product selection in the cart.
type Line struct {
	ProductID kernel.UUID
	Quantity  int
}

// Cart accumulates product selections for one session. The zero value is
// an empty, usable cart.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of a product into the cart. Adding a product
// already present merges the quantities.
func (c *Cart) Add(productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	for i := range c.lines {
		if c.lines[i].ProductID.IsEqual(productID) {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, Line{ProductID: productID, Quantity: quantity})
	return nil
}

// Lines returns the selections in insertion order.
func (c *Cart) Lines() []Line {
	result := make([]Line, len(c.lines))
	copy(result, c.lines)
	return result
}

// IsEmpty reports whether the cart has no selections.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes all selections. Called after the order the cart produced
// was committed.
func (c *Cart) Clear() {
	c.lines = nil
}
