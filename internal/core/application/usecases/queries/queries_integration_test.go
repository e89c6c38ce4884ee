package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type discardTracker struct{}

func (discardTracker) TrackAggregate(kernel.UUID, any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	base      time.Time
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.base = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestListMyOrders_PagesMostRecentFirst() {
	ctx := context.Background()
	actor := suite.actor(kernel.NewUUID(), kernel.RoleUser)
	placed := make([]*order.Order, 0, 12)
	for i := range 12 {
		placed = append(placed, suite.addOrder(actor.UserID(), i))
	}
	suite.addOrder(kernel.NewUUID(), 20)

	handler := queries.NewListMyOrdersQueryHandler(suite.db)

	first, err := handler.Handle(ctx, suite.myOrders(actor, 0))
	suite.Require().NoError(err)
	suite.Require().Len(first, queries.PageSize)
	suite.True(first[0].ID.IsEqual(placed[11].ID()))

	second, err := handler.Handle(ctx, suite.myOrders(actor, 5))
	suite.Require().NoError(err)
	suite.Require().Len(second, queries.PageSize)
	for i, resp := range second {
		suite.True(resp.ID.IsEqual(placed[6-i].ID()), "position %d", i)
		suite.True(resp.UserID.IsEqual(actor.UserID()))
	}

	last, err := handler.Handle(ctx, suite.myOrders(actor, 10))
	suite.Require().NoError(err)
	suite.Len(last, 2)

	beyond, err := handler.Handle(ctx, suite.myOrders(actor, 50))
	suite.Require().NoError(err)
	suite.NotNil(beyond)
	suite.Empty(beyond)
}

func (suite *QueriesIntegrationTestSuite) TestListAllOrders_FiltersByStatus() {
	ctx := context.Background()
	admin := suite.actor(kernel.NewUUID(), kernel.RoleAdmin)
	confirmed := suite.addOrder(kernel.NewUUID(), 0)
	suite.changeStatus(confirmed, order.Confirmed)
	suite.addOrder(kernel.NewUUID(), 1)
	suite.addOrder(kernel.NewUUID(), 2)

	handler := queries.NewListAllOrdersQueryHandler(suite.db)

	all, err := queries.NewListAllOrdersQuery(admin, nil, 0)
	suite.Require().NoError(err)
	orders, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Len(orders, 3)

	status := order.Confirmed
	filtered, err := queries.NewListAllOrdersQuery(admin, &status, 0)
	suite.Require().NoError(err)
	orders, err = handler.Handle(ctx, filtered)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID.IsEqual(confirmed.ID()))
	suite.Equal(order.Confirmed, orders[0].Status)
	suite.True(orders[0].NetAmount.IsEqual(kernel.MustMoney("12.50")))
}

func (suite *QueriesIntegrationTestSuite) TestListUserOrders_OnlyThatUser() {
	ctx := context.Background()
	admin := suite.actor(kernel.NewUUID(), kernel.RoleAdmin)
	userID := kernel.NewUUID()
	suite.addOrder(userID, 0)
	suite.addOrder(userID, 1)
	suite.addOrder(kernel.NewUUID(), 2)

	query, err := queries.NewListUserOrdersQuery(admin, userID, nil, 0)
	suite.Require().NoError(err)
	orders, err := queries.NewListUserOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	for _, resp := range orders {
		suite.True(resp.UserID.IsEqual(userID))
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsLinesAndHistory() {
	ctx := context.Background()
	owner := suite.actor(kernel.NewUUID(), kernel.RoleUser)
	o := suite.addOrder(owner.UserID(), 0)
	suite.changeStatus(o, order.Confirmed)
	suite.changeStatus(o, order.Cancelled)

	query, err := queries.NewGetOrderQuery(owner, o.ID())
	suite.Require().NoError(err)
	details, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, details.Status)
	suite.Require().NotNil(details.Address)
	suite.Equal("1 Main Road, Springfield, US-12345", *details.Address)
	suite.Require().Len(details.Lines, 2)
	suite.Equal(2, details.Lines[0].Quantity)
	suite.True(details.Lines[0].UnitPrice.IsEqual(kernel.MustMoney("5.00")))

	statuses := make([]order.Status, 0, len(details.Events))
	for _, event := range details.Events {
		statuses = append(statuses, event.Status)
	}
	suite.Equal([]order.Status{order.Pending, order.Confirmed, order.Cancelled}, statuses)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_HistoryWithEqualTimestampsKeepsTransitionOrder() {
	ctx := context.Background()
	owner := suite.actor(kernel.NewUUID(), kernel.RoleUser)
	repository := orderrepo.NewGormOrderRepository(suite.db, discardTracker{})
	handler := queries.NewGetOrderQueryHandler(suite.db)

	for i := range 4 {
		o := suite.addOrder(owner.UserID(), i)

		// Both transitions are clamped to the creation time.
		earlier := o.CreatedAt().Add(-time.Hour)
		suite.Require().NoError(o.ChangeStatus(order.Confirmed, earlier))
		suite.Require().NoError(repository.Update(ctx, o))
		suite.Require().NoError(o.ChangeStatus(order.Cancelled, earlier))
		suite.Require().NoError(repository.Update(ctx, o))

		query, err := queries.NewGetOrderQuery(owner, o.ID())
		suite.Require().NoError(err)
		details, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Require().Len(details.Events, 3)
		suite.True(details.Events[0].CreatedAt.Equal(details.Events[2].CreatedAt))
		suite.Equal(
			[]order.Status{order.Pending, order.Confirmed, order.Cancelled},
			[]order.Status{details.Events[0].Status, details.Events[1].Status, details.Events[2].Status},
		)
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Visibility() {
	ctx := context.Background()
	o := suite.addOrder(kernel.NewUUID(), 0)
	handler := queries.NewGetOrderQueryHandler(suite.db)

	stranger, err := queries.NewGetOrderQuery(suite.actor(kernel.NewUUID(), kernel.RoleUser), o.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, stranger)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	admin, err := queries.NewGetOrderQuery(suite.actor(kernel.NewUUID(), kernel.RoleAdmin), o.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, admin)
	suite.Require().NoError(err)

	missing, err := queries.NewGetOrderQuery(suite.actor(kernel.NewUUID(), kernel.RoleAdmin), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_JoinsCatalog() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	tea, err := pgtest.SeedProduct(suite.db, "Tea", "4.75")
	suite.Require().NoError(err)

	repository := cartrepo.NewGormCartRepository(suite.db)
	first, err := cart.NewItem(kernel.NewUUID(), userID, tea, 2, suite.base)
	suite.Require().NoError(err)
	gone, err := cart.NewItem(kernel.NewUUID(), userID, kernel.NewUUID(), 1, suite.base.Add(time.Minute))
	suite.Require().NoError(err)
	foreign, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), tea, 1, suite.base)
	suite.Require().NoError(err)
	for _, item := range []*cart.Item{gone, first, foreign} {
		suite.Require().NoError(repository.Add(ctx, item))
	}

	query, err := queries.NewGetCartQuery(userID)
	suite.Require().NoError(err)
	items, err := queries.NewGetCartQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.True(items[0].ID.IsEqual(first.ID()))
	suite.Require().NotNil(items[0].Product)
	suite.Equal("Tea", items[0].Product.Name)
	suite.True(items[0].Product.Price.IsEqual(kernel.MustMoney("4.75")))
	suite.True(items[1].ID.IsEqual(gone.ID()))
	suite.Nil(items[1].Product)
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_Empty() {
	query, err := queries.NewGetCartQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	items, err := queries.NewGetCartQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *QueriesIntegrationTestSuite) actor(userID kernel.UUID, role kernel.Role) kernel.Actor {
	actor, err := kernel.NewActor(userID, role)
	suite.Require().NoError(err)
	return actor
}

func (suite *QueriesIntegrationTestSuite) myOrders(actor kernel.Actor, skip int) queries.ListMyOrdersQuery {
	query, err := queries.NewListMyOrdersQuery(actor, skip)
	suite.Require().NoError(err)
	return query
}

// addOrder stores an order of 12.50 placed minute minutes after the suite's base time.
func (suite *QueriesIntegrationTestSuite) addOrder(userID kernel.UUID, minute int) *order.Order {
	first, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustMoney("5.00"))
	suite.Require().NoError(err)
	second, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, kernel.MustMoney("2.50"))
	suite.Require().NoError(err)

	address := "1 Main Road, Springfield, US-12345"
	createdAt := suite.base.Add(time.Duration(minute) * time.Minute)
	o, err := order.NewOrder(kernel.NewUUID(), userID, []order.Line{first, second}, &address, createdAt)
	suite.Require().NoError(err)

	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, discardTracker{}).Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) changeStatus(o *order.Order, next order.Status) {
	suite.Require().NoError(o.ChangeStatus(next, o.StatusChangedAt().Add(time.Second)))
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, discardTracker{}).Update(context.Background(), o))
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
