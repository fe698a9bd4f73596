package commands

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/pkg/errs"
)

// CreateProductCommandHandler handles product entry.
// The supplier upsert and the product insert run in one transaction, so
// product entry never blocks on a missing supplier record.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product entry.
// Requires a CatalogUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product entry command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogStore := uow.CatalogStore()

	supplierID, err := catalogStore.ResolveOrCreateSupplier(ctx, cmd.SupplierName())
	if err != nil {
		return err
	}

	product, err := catalog.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.StockQuantity(),
		cmd.CategoryID(),
		supplierID,
	)
	if err != nil {
		return err
	}

	if err = catalogStore.AddProduct(ctx, product); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit product entry", err)
	}

	return nil
}
