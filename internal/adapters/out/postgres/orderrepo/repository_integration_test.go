package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	repo         *orderrepo.GormOrderRepository
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &noopTracker{})
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &noopTracker{})
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, deliveries CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder(3, "12.50")

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(restored.ID()))
	suite.True(o.CustomerID().IsEqual(restored.CustomerID()))
	suite.Equal(3, restored.Quantity())
	suite.Equal("37.50", restored.TotalPrice().String())
	suite.Equal(order.Pending, restored.Status())
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsStatusAndTotal() {
	ctx := context.Background()
	o := suite.newOrder(2, "10.00")

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	err = o.Accept()
	suite.Require().NoError(err)
	newPrice, err := kernel.NewMoneyFromString("11.00")
	suite.Require().NoError(err)
	o.Reprice(newPrice)

	err = suite.repo.Update(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, restored.Status())
	suite.Equal("22.00", restored.TotalPrice().String())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_MissingRowReturnsNotFound() {
	o := suite.newOrder(1, "10.00")

	err := suite.repo.Update(context.Background(), o)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGetAllPaidWithoutDelivery_SkipsDispatchedAndUnpaid() {
	ctx := context.Background()

	backlog := suite.newPaidOrder()
	err := suite.repo.Add(ctx, backlog)
	suite.Require().NoError(err)

	pending := suite.newOrder(1, "5.00")
	err = suite.repo.Add(ctx, pending)
	suite.Require().NoError(err)

	dispatched := suite.newPaidOrder()
	err = suite.repo.Add(ctx, dispatched)
	suite.Require().NoError(err)
	dlv, err := delivery.NewDelivery(kernel.NewUUID(), dispatched.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	err = suite.deliveryRepo.Add(ctx, dlv)
	suite.Require().NoError(err)

	orders, err := suite.repo.GetAllPaidWithoutDelivery(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(backlog.ID().IsEqual(orders[0].ID()))
}

func (suite *OrderRepositoryTestSuite) TestGetAllPaidWithoutDelivery_EmptyBacklog() {
	orders, err := suite.repo.GetAllPaidWithoutDelivery(context.Background())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryTestSuite) newOrder(quantity int, unitPrice string) *order.Order {
	price, err := kernel.NewMoneyFromString(unitPrice)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), quantity, price)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) newPaidOrder() *order.Order {
	o := suite.newOrder(1, "8.00")
	suite.Require().NoError(o.Accept())
	suite.Require().NoError(o.MarkPaid())
	return o
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}

// noopTracker implements the aggregate tracker for test purposes.
type noopTracker struct{}

func (t *noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
