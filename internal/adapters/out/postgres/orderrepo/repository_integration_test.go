package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.StatusHistoryDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_status_history").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.MoneyFromString("19.99")
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)

	orderDate := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), orderDate, []*order.Item{item}, nil, nil)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertRowCount("orders", 1)
	suite.assertRowCount("order_items", 1)
	suite.assertRowCount("order_status_history", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	ctx := context.Background()
	var notConstructed order.Order

	err := suite.repository.Add(ctx, &notConstructed)
	suite.Require().Error(err)
	suite.assertRowCount("orders", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.True(retrieved.CustomerID().IsEqual(testOrder.CustomerID()))
	suite.Equal("39.98", retrieved.TotalAmount().String())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.Equal("19.99", retrieved.Items()[0].UnitPrice().String())
	suite.Require().Len(retrieved.History(), 1)
	suite.Equal(order.Pending, retrieved.History()[0].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_AppendsExactlyOneHistoryRow() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	changed, err := testOrder.ChangeStatus(order.Processing, testOrder.OrderDate().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().True(changed)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.assertRowCount("order_status_history", 2)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())
	suite.Require().Len(retrieved.History(), 2)
	suite.Equal(order.Processing, retrieved.History()[1].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Twice_IsIdempotentOnHistory() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := testOrder.ChangeStatus(order.Shipped, testOrder.OrderDate().Add(time.Hour))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// existing rows conflict by primary key and are skipped
	suite.assertRowCount("order_status_history", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestMostRecentHistoryMatchesStatus() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	steps := []order.Status{order.Processing, order.Shipped, order.Delivered}
	for i, status := range steps {
		_, err := testOrder.ChangeStatus(status, testOrder.OrderDate().Add(time.Duration(i+1)*time.Hour))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Update(ctx, testOrder))

		retrieved, err := suite.repository.Get(ctx, testOrder.ID())
		suite.Require().NoError(err)
		last := retrieved.History()[len(retrieved.History())-1]
		suite.Equal(retrieved.Status(), last.Status())
	}
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
