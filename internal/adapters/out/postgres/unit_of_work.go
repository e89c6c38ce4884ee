// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across the order, cart and outbox repositories
//   - Aggregate tracking: events of every order written through the unit of
//     work are stored in the outbox within the same transaction
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	// All operations within same transaction
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	if _, err := uow.CartRepository().RemoveItems(ctx, userID, itemIDs); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Row and advisory locks taken by the repositories are held until Commit or Rollback
package postgres

import (
	"context"

	"storefront/internal/adapters/out/postgres/addressrepo"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
//
// Events recorded by tracked order aggregates are collected when the
// repository tracks the aggregate and written to the outbox right before the
// transaction commits, so an order change and its outgoing message are
// stored atomically.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	outbox   []ports.OutboxMessage
	trackErr error
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit stores the collected outbox messages and commits the transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
// Serialization failures and deadlocks reported at commit are returned as ConflictError.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if uow.trackErr != nil {
		return uow.trackErr
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, uow.outbox...); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.reset()
	return pgerr.Translate(err, "transaction")
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
//
// The returned repository tracks all order aggregates that are added or
// updated, which queues their events for the outbox.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CartRepository provides access to cart persistence within the unit of work.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

// Catalog reads products within the unit of work.
func (uow *GormUnitOfWork) Catalog() ports.Catalog {
	return catalogrepo.NewGormCatalog(uow.conn())
}

// AddressBook reads addresses within the unit of work.
func (uow *GormUnitOfWork) AddressBook() ports.AddressBook {
	return addressrepo.NewGormAddressBook(uow.conn())
}

// OutboxRepository provides access to the outbox within the unit of work.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is called by repository implementations when aggregates are
// added or updated; pending events of orders are converted into outbox messages.
// Other aggregates carry no outgoing events and are ignored.
//
// Example (used by repository implementations):
//
//	func (r *GormOrderRepository) Add(ctx context.Context, order *order.Order) error {
//	    if err := r.db.Create(orderDTO).Error; err != nil {
//	        return err
//	    }
//
//	    r.tracker.TrackAggregate(order.ID(), order)
//	    order.ClearPendingEvents()
//	    return nil
//	}
func (uow *GormUnitOfWork) TrackAggregate(_ kernel.UUID, aggregate any) {
	tracked, ok := aggregate.(*order.Order)
	if !ok {
		return
	}
	for _, event := range tracked.PendingEvents() {
		message, err := outboxrepo.NewOrderEventMessage(event)
		if err != nil {
			uow.trackErr = err
			return
		}
		uow.outbox = append(uow.outbox, message)
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.outbox = nil
	uow.trackErr = nil
}
