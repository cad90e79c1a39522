package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderEventsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderEventsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderEventsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderEventsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderEventsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderEventsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_events CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderEventsQueryHandlerTestSuite) TestHandle_NoEvents_ReturnsEmptySlice() {
	query, err := queries.NewGetOrderEventsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderEventsQueryHandlerTestSuite) TestHandle_NewOrder_ReturnsCreationEvent() {
	seeded := suite.createPendingOrder()

	query, err := queries.NewGetOrderEventsQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(seeded.ID(), result[0].OrderID)
	suite.Equal("UNKNOWN", result[0].From)
	suite.Equal("PENDING", result[0].To)
	suite.Equal("checkout", result[0].Actor)
	suite.Empty(result[0].Reason)
	suite.False(result[0].OccurredAt.IsZero())
}

func (suite *GetOrderEventsQueryHandlerTestSuite) TestHandle_TransitionedOrder_ReturnsChronologicalTrail() {
	ctx := context.Background()
	seeded := suite.createPendingOrder()

	// Walk the order through confirmation and cancellation
	previousStatus := seeded.Status()
	suite.Require().NoError(seeded.TransitionTo(order.Confirmed, "merchant", ""))
	suite.Require().NoError(suite.orderRepo.UpdateStatus(ctx, seeded, previousStatus))

	previousStatus = seeded.Status()
	suite.Require().NoError(seeded.TransitionTo(order.Cancelled, "customer", "changed my mind"))
	suite.Require().NoError(suite.orderRepo.UpdateStatus(ctx, seeded, previousStatus))

	query, err := queries.NewGetOrderEventsQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("UNKNOWN", result[0].From)
	suite.Equal("PENDING", result[0].To)

	suite.Equal("PENDING", result[1].From)
	suite.Equal("CONFIRMED", result[1].To)
	suite.Equal("merchant", result[1].Actor)

	suite.Equal("CONFIRMED", result[2].From)
	suite.Equal("CANCELLED", result[2].To)
	suite.Equal("customer", result[2].Actor)
	suite.Equal("changed my mind", result[2].Reason)

	// Chronological order
	for i := range len(result) - 1 {
		suite.False(result[i].OccurredAt.After(result[i+1].OccurredAt),
			"Events should be ordered oldest first")
	}
}

func (suite *GetOrderEventsQueryHandlerTestSuite) TestHandle_OtherOrdersEvents_AreNotIncluded() {
	seeded := suite.createPendingOrder()
	other := suite.createPendingOrder()

	query, err := queries.NewGetOrderEventsQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(seeded.ID(), result[0].OrderID)
	suite.NotEqual(other.ID(), result[0].OrderID)
}

func (suite *GetOrderEventsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderEventsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrderEventsQuery constructor")
}

func (suite *GetOrderEventsQueryHandlerTestSuite) createPendingOrder() *order.Order {
	destination, err := kernel.NewPostalCode("238874")
	suite.Require().NoError(err)

	seeded, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), destination, 42.50, 5.0)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), seeded)
	suite.Require().NoError(err)

	return seeded
}

func TestGetOrderEventsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderEventsQueryHandlerTestSuite))
}
