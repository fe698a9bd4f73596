package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductCommand(t *testing.T) commands.CreateProductCommand {
	t.Helper()
	price, err := kernel.MoneyFromString("19.99")
	require.NoError(t, err)
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "Wireless Mouse", "", price, 40, kernel.NewUUID(), "Acme Wholesale")
	require.NoError(t, err)
	return cmd
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newProductCommand(t)
	supplierID := kernel.NewUUID()

	store := new(MockCatalogStore)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogStore").Return(store).Once(),
		store.On("ResolveOrCreateSupplier", mock.Anything, "Acme Wholesale").
			Return(supplierID, nil).Once(),
		store.On("AddProduct", mock.Anything, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.ID().IsEqual(cmd.ProductID()) && p.SupplierID().IsEqual(supplierID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_SupplierUpsertFails(t *testing.T) {
	ctx := t.Context()
	cmd := newProductCommand(t)

	store := new(MockCatalogStore)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogStore").Return(store).Once(),
		store.On("ResolveOrCreateSupplier", mock.Anything, "Acme Wholesale").
			Return(kernel.UUID{}, errs.NewPersistenceError("upsert supplier", errMockPersistence)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistenceFailed)
	store.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_CommitFails(t *testing.T) {
	ctx := t.Context()
	cmd := newProductCommand(t)

	store := new(MockCatalogStore)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogStore").Return(store).Once(),
		store.On("ResolveOrCreateSupplier", mock.Anything, "Acme Wholesale").
			Return(kernel.NewUUID(), nil).Once(),
		store.On("AddProduct", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errMockPersistence).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistenceFailed)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	var cmd commands.CreateProductCommand

	factory := new(MockCatalogUoWFactory)
	h := commands.NewCreateProductCommandHandler(factory)

	err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
