package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of the
// GORM-based unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &productrepo.ProductDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, items, products RESTART IDENTITY").Error)
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	persisted, err := uow.OrderRepository().Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)
	suite.Positive(persisted.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.OrderRepository().Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestProductRepository_ReadsWithinTransaction() {
	ctx := context.Background()

	suite.Require().NoError(suite.db.Create(&productrepo.ProductDTO{ID: 1, Name: "Produto Teste"}).Error)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	loaded, err := uow.ProductRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("Produto Teste", loaded.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	p, err := product.NewProduct(1, "Produto Teste")
	suite.Require().NoError(err)

	item, err := order.NewItem(p, 100.0, 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder([]order.Item{item}, "2025-10-20", "2025-10-15")
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
