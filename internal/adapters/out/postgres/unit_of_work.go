// Package postgres provides the GORM-based unit of work. A unit of work owns
// one database transaction; repositories obtained from it after Begin run in
// that transaction.
//
// Aggregates added or updated through a repository are tracked. On Commit the
// unit of work drains their domain events into the outbox inside the same
// transaction, so an order row and its order.placed message are written
// together or not at all.
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, placed); err != nil {
//	    return err
//	}
//	for _, r := range reservations {
//	    if err := uow.ProductRepository().DecrementStock(ctx, r.ProductID, r.Quantity); err != nil {
//	        return err
//	    }
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork is single-use and not safe for concurrent use; create one
// per request or job run.
package postgres

import (
	"context"

	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/outboxrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/adapters/out/postgres/settingsrepo"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate changed during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DomainEvents() []order.Event
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state and tracker.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates it touches.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the tracked aggregates' pending events to the outbox and
// commits. Events are cleared from the aggregates only after a successful commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources, msgs, err := uow.pendingMessages()
	if err != nil {
		return err
	}

	if err = outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, msgs...); err != nil {
		return err
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if err != nil {
		return err
	}

	for _, s := range sources {
		s.ClearDomainEvents()
	}

	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when nothing is open, which is the normal case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate changed within this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// pendingMessages collects outbox messages from every tracked aggregate that
// records events, visiting each aggregate once.
func (uow *GormUnitOfWork) pendingMessages() ([]eventSource, []ports.OutboxMessage, error) {
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	var (
		sources []eventSource
		msgs    []ports.OutboxMessage
	)

	for _, tracked := range uow.trackedAggregates {
		if _, ok := seen[tracked.Aggregate]; ok {
			continue
		}
		seen[tracked.Aggregate] = struct{}{}

		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		sources = append(sources, source)

		for _, event := range source.DomainEvents() {
			msg, err := outboxrepo.FromEvent(event)
			if err != nil {
				return nil, nil, err
			}
			msgs = append(msgs, msg)
		}
	}

	return sources, msgs, nil
}
