package commands

import (
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCartIsEmpty = errors.New("cart must contain at least one product")
)

// CreateOrderCommand represents a checkout request: a customer turning the
// pending selection of one session into a persisted order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, sessionCart)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created, total %s", result.OrderID, result.TotalAmount)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	// sessionCart is the explicit per-session selection; it is cleared only
	// after the order commits
	sessionCart *cart.Cart

	shippingAddressID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order from a session
// cart. Validates that both identifiers are valid and the cart is not empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	sessionCart *cart.Cart,
	shippingAddressID *kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setSessionCart(sessionCart),
		orderCommand.setShippingAddressID(shippingAddressID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// SessionCart returns the cart being checked out.
func (c CreateOrderCommand) SessionCart() *cart.Cart {
	return c.sessionCart
}

// ShippingAddressID returns the optional shipping address reference.
func (c CreateOrderCommand) ShippingAddressID() *kernel.UUID {
	return c.shippingAddressID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setSessionCart(sessionCart *cart.Cart) error {
	if sessionCart == nil || sessionCart.IsEmpty() {
		return ErrCartIsEmpty
	}

	c.sessionCart = sessionCart
	return nil
}

func (c *CreateOrderCommand) setShippingAddressID(shippingAddressID *kernel.UUID) error {
	if shippingAddressID != nil {
		if err := shippingAddressID.Validate(); err != nil {
			return err
		}
	}

	c.shippingAddressID = shippingAddressID
	return nil
}
