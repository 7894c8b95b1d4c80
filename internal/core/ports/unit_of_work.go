package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction; domain events of tracked aggregates are written
// to the outbox on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	SettingsRepository() SettingsRepository
	OrderRepository() OrderRepository
	OutboxRepository() OutboxRepository
}
