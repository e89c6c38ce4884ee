package cartrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = cartrepo.NewGormCartRepository(suite.db)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	item := suite.addItem(kernel.NewUUID(), 3, time.Now().UTC())

	got, err := suite.repository.Get(ctx, item.ID())

	suite.Require().NoError(err)
	suite.True(got.UserID().IsEqual(item.UserID()))
	suite.True(got.ProductID().IsEqual(item.ProductID()))
	suite.Equal(3, got.Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdate_ChangesQuantity() {
	ctx := context.Background()
	item := suite.addItem(kernel.NewUUID(), 1, time.Now().UTC())
	suite.Require().NoError(item.ChangeQuantity(7))

	suite.Require().NoError(suite.repository.Update(ctx, item))

	got, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(7, got.Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemove() {
	ctx := context.Background()
	item := suite.addItem(kernel.NewUUID(), 1, time.Now().UTC())

	suite.Require().NoError(suite.repository.Remove(ctx, item.ID()))

	err := suite.repository.Remove(ctx, item.ID())
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *CartRepositoryIntegrationTestSuite) TestListByUserForUpdate_OldestFirstAndOnlyOwnItems() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)
	second := suite.addItem(userID, 2, base.Add(time.Second))
	first := suite.addItem(userID, 1, base)
	suite.addItem(kernel.NewUUID(), 5, base)

	var items []*cart.Item
	err := suite.db.Transaction(func(tx *gorm.DB) error {
		var listErr error
		items, listErr = cartrepo.NewGormCartRepository(tx).ListByUserForUpdate(ctx, userID)
		return listErr
	})

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.True(items[0].ID().IsEqual(first.ID()))
	suite.True(items[1].ID().IsEqual(second.ID()))
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemoveItems_OnlyGivenItemsOfUser() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	now := time.Now().UTC()
	a := suite.addItem(userID, 1, now)
	b := suite.addItem(userID, 1, now)
	kept := suite.addItem(userID, 1, now)
	foreign := suite.addItem(kernel.NewUUID(), 1, now)

	removed, err := suite.repository.RemoveItems(ctx, userID, []kernel.UUID{a.ID(), b.ID(), foreign.ID()})

	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)
	suite.assertItemExists(kept.ID())
	suite.assertItemExists(foreign.ID())
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemoveItems_Empty() {
	removed, err := suite.repository.RemoveItems(context.Background(), kernel.NewUUID(), nil)

	suite.Require().NoError(err)
	suite.Zero(removed)
}

func (suite *CartRepositoryIntegrationTestSuite) TestLockUserCart_SerializesHolders() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	locked := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = suite.db.Transaction(func(tx *gorm.DB) error {
			if err := cartrepo.NewGormCartRepository(tx).LockUserCart(ctx, userID); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	// A second holder gives up while the first transaction is still open.
	err := suite.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET LOCAL lock_timeout = '200ms'").Error; err != nil {
			return err
		}
		return cartrepo.NewGormCartRepository(tx).LockUserCart(ctx, userID)
	})
	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)

	// Other users are not affected.
	suite.Require().NoError(suite.db.Transaction(func(tx *gorm.DB) error {
		return cartrepo.NewGormCartRepository(tx).LockUserCart(ctx, kernel.NewUUID())
	}))

	close(release)
	wg.Wait()

	suite.Require().NoError(suite.db.Transaction(func(tx *gorm.DB) error {
		return cartrepo.NewGormCartRepository(tx).LockUserCart(ctx, userID)
	}))
}

func (suite *CartRepositoryIntegrationTestSuite) addItem(userID kernel.UUID, quantity int, createdAt time.Time) *cart.Item {
	item, err := cart.NewItem(kernel.NewUUID(), userID, kernel.NewUUID(), quantity, createdAt.Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), item))
	return item
}

func (suite *CartRepositoryIntegrationTestSuite) assertItemExists(id kernel.UUID) {
	_, err := suite.repository.Get(context.Background(), id)
	suite.Require().NoError(err, "cart item %s must be kept", id)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
