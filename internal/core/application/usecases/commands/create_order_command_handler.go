package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// CreateOrderResult reports what a successful checkout produced. The total
// is returned so the caller needs no follow-up read.
type CreateOrderResult struct {
	OrderID     kernel.UUID
	TotalAmount kernel.Money
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves each cart line against the catalog, snapshots the unit prices,
// and persists the order with its items and the initial Pending history
// record in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The session cart is cleared only after the transaction commits, so a
// failed checkout leaves the selection intact for retry.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogStore := uow.CatalogStore()

	sessionCart := cmd.SessionCart()
	items := make([]*order.Item, 0, len(sessionCart.Lines()))
	for _, line := range sessionCart.Lines() {
		product, err := catalogStore.GetProduct(ctx, line.ProductID)
		if err != nil {
			return CreateOrderResult{}, err
		}

		item, err := order.NewItem(kernel.NewUUID(), product.ID(), line.Quantity, product.Price())
		if err != nil {
			return CreateOrderResult{}, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), time.Now(), items, nil, cmd.ShippingAddressID(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, errs.NewPersistenceError("commit order creation", err)
	}

	sessionCart.Clear()

	return CreateOrderResult{
		OrderID:     aggregate.ID(),
		TotalAmount: aggregate.TotalAmount(),
	}, nil
}
