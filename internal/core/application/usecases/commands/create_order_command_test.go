package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.NewCart()
	require.NoError(t, c.Add(kernel.NewUUID(), 2))
	return c
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	sessionCart := newFilledCart(t)

	cmd, err := commands.NewCreateOrderCommand(id, customerID, sessionCart, nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Same(t, sessionCart, cmd.SessionCart())
	assert.Nil(t, cmd.ShippingAddressID())
}

func TestNewCreateOrderCommand_WithShippingAddress(t *testing.T) {
	addressID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), newFilledCart(t), &addressID)
	require.NoError(t, err)
	require.NotNil(t, cmd.ShippingAddressID())
	assert.True(t, cmd.ShippingAddressID().IsEqual(addressID))
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), newFilledCart(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), cart.NewCart(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCartIsEmpty)
}

func TestNewCreateOrderCommand_NilCart(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCartIsEmpty)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
