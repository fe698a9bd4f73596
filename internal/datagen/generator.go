// Package datagen populates the storefront schema with referentially
// consistent synthetic datasets. Reference data is written in dependency
// order with batched inserts; orders are built through the domain model so
// every generated row satisfies the same invariants production writes do.
package datagen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/directoryrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sizes configures how many rows of each kind to generate. ChunkSize bounds
// both batch inserts and the number of orders per transaction.
type Sizes struct {
	Customers  int
	Addresses  int
	Categories int
	Suppliers  int
	Products   int
	Discounts  int
	Orders     int
	ChunkSize  int
}

// Generator produces synthetic storefront data.
type Generator struct {
	db         *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	faker      *gofakeit.Faker
	sizes      Sizes
	logger     *slog.Logger
}

// NewGenerator creates a generator. The seed makes runs reproducible.
func NewGenerator(
	db *gorm.DB,
	uowFactory ports.UnitOfWorkFactory,
	sizes Sizes,
	seed uint64,
	logger *slog.Logger,
) *Generator {
	if sizes.ChunkSize < 1 {
		sizes.ChunkSize = 1000
	}

	return &Generator{
		db:         db,
		uowFactory: uowFactory,
		faker:      gofakeit.New(seed),
		sizes:      sizes,
		logger:     logger.With("component", "datagen"),
	}
}

// referenceData tracks generated rows so later stages can reference them.
type referenceData struct {
	customers []directoryrepo.CustomerDTO
	addresses map[uuid.UUID][]uuid.UUID
	discounts []directoryrepo.DiscountDTO
	products  []catalogrepo.ProductDTO
}

// Run generates the full dataset: reference data first, then orders with
// their derived deliveries and transactions.
func (g *Generator) Run(ctx context.Context) error {
	reference, err := g.generateReference(ctx)
	if err != nil {
		return err
	}

	return g.generateOrders(ctx, reference)
}

func (g *Generator) generateReference(ctx context.Context) (*referenceData, error) {
	reference := &referenceData{
		addresses: make(map[uuid.UUID][]uuid.UUID),
	}

	reference.customers = make([]directoryrepo.CustomerDTO, g.sizes.Customers)
	for i := range reference.customers {
		reference.customers[i] = directoryrepo.CustomerDTO{
			ID:    uuid.New(),
			Name:  g.faker.Name(),
			Email: fmt.Sprintf("customer%d@example.com", i+1),
			Phone: g.faker.Phone(),
		}
	}
	if err := insertBatched(ctx, g, "customers", reference.customers); err != nil {
		return nil, err
	}

	addresses := make([]directoryrepo.CustomerAddressDTO, g.sizes.Addresses)
	for i := range addresses {
		owner := reference.customers[g.faker.IntRange(0, len(reference.customers)-1)]
		addresses[i] = directoryrepo.CustomerAddressDTO{
			ID:         uuid.New(),
			CustomerID: owner.ID,
			Street:     g.faker.Street(),
			City:       g.faker.City(),
			State:      g.faker.State(),
			PostalCode: g.faker.Zip(),
			Country:    g.faker.Country(),
		}
		reference.addresses[owner.ID] = append(reference.addresses[owner.ID], addresses[i].ID)
	}
	if err := insertBatched(ctx, g, "customer addresses", addresses); err != nil {
		return nil, err
	}

	categories := make([]catalogrepo.CategoryDTO, g.sizes.Categories)
	for i := range categories {
		categories[i] = catalogrepo.CategoryDTO{
			ID:   uuid.New(),
			Name: fmt.Sprintf("%s %s %d", g.faker.ProductCategory(), g.faker.NounCollectiveThing(), i+1),
		}
	}
	if err := insertBatched(ctx, g, "categories", categories); err != nil {
		return nil, err
	}

	suppliers := make([]catalogrepo.SupplierDTO, g.sizes.Suppliers)
	for i := range suppliers {
		suppliers[i] = catalogrepo.SupplierDTO{
			ID:    uuid.New(),
			Name:  fmt.Sprintf("%s %d", g.faker.Company(), i+1),
			Email: fmt.Sprintf("supplier%d@example.com", i+1),
			Phone: g.faker.Phone(),
		}
	}
	if err := insertBatched(ctx, g, "suppliers", suppliers); err != nil {
		return nil, err
	}

	reference.products = make([]catalogrepo.ProductDTO, g.sizes.Products)
	for i := range reference.products {
		reference.products[i] = catalogrepo.ProductDTO{
			ID:            uuid.New(),
			Name:          fmt.Sprintf("%s %d", g.faker.ProductName(), i+1),
			Description:   g.faker.Sentence(12),
			Price:         decimal.NewFromFloat(g.faker.Price(1, 1000)).Round(2),
			StockQuantity: g.faker.IntRange(0, 1000),
			CategoryID:    categories[g.faker.IntRange(0, len(categories)-1)].ID,
			SupplierID:    suppliers[g.faker.IntRange(0, len(suppliers)-1)].ID,
		}
	}
	if err := insertBatched(ctx, g, "products", reference.products); err != nil {
		return nil, err
	}

	reference.discounts = make([]directoryrepo.DiscountDTO, g.sizes.Discounts)
	for i := range reference.discounts {
		validFrom := g.faker.DateRange(time.Now().AddDate(0, -6, 0), time.Now())
		reference.discounts[i] = directoryrepo.DiscountDTO{
			ID:          uuid.New(),
			Code:        fmt.Sprintf("DIS%07d", i+1),
			Description: g.faker.Sentence(8),
			Percent:     decimal.NewFromFloat(g.faker.Float64Range(5, 50)).Round(2),
			ValidFrom:   validFrom,
			ValidTo:     g.faker.DateRange(validFrom.AddDate(0, 1, 0), validFrom.AddDate(1, 0, 0)),
		}
	}
	if err := insertBatched(ctx, g, "discounts", reference.discounts); err != nil {
		return nil, err
	}

	return reference, nil
}

func insertBatched[T any](ctx context.Context, g *Generator, kind string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	if err := g.db.WithContext(ctx).CreateInBatches(rows, g.sizes.ChunkSize).Error; err != nil {
		return errs.NewPersistenceError("insert "+kind, err)
	}

	g.logger.InfoContext(ctx, "Reference data inserted", "kind", kind, "count", len(rows))
	return nil
}

// generateOrders writes orders in chunk-sized transactions. A failed chunk
// is rolled back and retried wholesale once before the run aborts.
func (g *Generator) generateOrders(ctx context.Context, reference *referenceData) error {
	remaining := g.sizes.Orders
	for remaining > 0 {
		count := remaining
		if count > g.sizes.ChunkSize {
			count = g.sizes.ChunkSize
		}

		if err := g.orderChunk(ctx, reference, count); err != nil {
			g.logger.WarnContext(ctx, "Order chunk failed, retrying wholesale", "count", count, "error", err)
			if err = g.orderChunk(ctx, reference, count); err != nil {
				return err
			}
		}

		remaining -= count
		g.logger.InfoContext(ctx, "Order chunk committed", "count", count, "remaining", remaining)
	}

	return nil
}

func (g *Generator) orderChunk(ctx context.Context, reference *referenceData, count int) error {
	uow := g.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for i := 0; i < count; i++ {
		aggregate, delivery, transaction, err := g.buildOrder(reference)
		if err != nil {
			return err
		}

		if err = ValidateDerived(aggregate, delivery, transaction); err != nil {
			return err
		}

		if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
			return err
		}
		if err = uow.DeliveryRepository().Add(ctx, delivery); err != nil {
			return err
		}
		if err = uow.TransactionRepository().Add(ctx, transaction); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit generated orders", err)
	}
	return nil
}

var orderStatusTargets = []order.Status{
	order.Pending, order.Processing, order.Shipped, order.Delivered, order.Cancelled,
}

var paymentMethods = []payment.Method{
	payment.CreditCard, payment.DebitCard, payment.PayPal, payment.BankTransfer,
}

func (g *Generator) buildOrder(reference *referenceData) (*order.Order, *shipment.Delivery, *payment.Transaction, error) {
	customer := reference.customers[g.faker.IntRange(0, len(reference.customers)-1)]
	customerID, err := kernel.UUIDFromBytes(customer.ID[:])
	if err != nil {
		return nil, nil, nil, err
	}

	itemCount := g.faker.IntRange(1, 4)
	items := make([]*order.Item, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		product := reference.products[g.faker.IntRange(0, len(reference.products)-1)]
		productID, productErr := kernel.UUIDFromBytes(product.ID[:])
		if productErr != nil {
			return nil, nil, nil, productErr
		}
		unitPrice, priceErr := kernel.MoneyFromDecimal(product.Price)
		if priceErr != nil {
			return nil, nil, nil, priceErr
		}

		item, itemErr := order.NewItem(kernel.NewUUID(), productID, g.faker.IntRange(1, 5), unitPrice)
		if itemErr != nil {
			return nil, nil, nil, itemErr
		}
		items = append(items, item)
	}

	// The original dataset attaches a discount to roughly 30% of orders.
	var discount *order.AppliedDiscount
	if len(reference.discounts) > 0 && g.faker.Float64Range(0, 1) < 0.3 {
		row := reference.discounts[g.faker.IntRange(0, len(reference.discounts)-1)]
		discountID, discountErr := kernel.UUIDFromBytes(row.ID[:])
		if discountErr != nil {
			return nil, nil, nil, discountErr
		}
		applied, discountErr := order.NewAppliedDiscount(discountID, row.Percent)
		if discountErr != nil {
			return nil, nil, nil, discountErr
		}
		discount = &applied
	}

	var shippingAddressID *kernel.UUID
	if owned := reference.addresses[customer.ID]; len(owned) > 0 {
		raw := owned[g.faker.IntRange(0, len(owned)-1)]
		addressID, addressErr := kernel.UUIDFromBytes(raw[:])
		if addressErr != nil {
			return nil, nil, nil, addressErr
		}
		shippingAddressID = &addressID
	}

	now := time.Now()
	orderDate := g.faker.DateRange(now.AddDate(-1, 0, 0), now.AddDate(0, 0, -35))

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, orderDate, items, discount, shippingAddressID)
	if err != nil {
		return nil, nil, nil, err
	}

	target := orderStatusTargets[g.faker.IntRange(0, len(orderStatusTargets)-1)]
	for step, status := range StatusPath(target)[1:] {
		at := orderDate.Add(time.Duration(step+1) * 24 * time.Hour)
		if _, err = aggregate.ChangeStatus(status, at); err != nil {
			return nil, nil, nil, err
		}
	}

	delivery, err := DeriveDelivery(kernel.NewUUID(), aggregate, g.faker.IntRange(1, 30))
	if err != nil {
		return nil, nil, nil, err
	}

	method := paymentMethods[g.faker.IntRange(0, len(paymentMethods)-1)]
	transaction, err := DeriveTransaction(kernel.NewUUID(), aggregate, method)
	if err != nil {
		return nil, nil, nil, err
	}

	return aggregate, delivery, transaction, nil
}
