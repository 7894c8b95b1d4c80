// Package commands contains the use cases that change state: placing and
// updating orders, maintaining the catalog and settings, and relaying the outbox.
// Every handler follows the same shape: validate the command, open a unit of
// work, load and mutate aggregates, persist, commit.
package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// Unit of work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// PlacementUoW spans everything order placement reads or writes: settings
	// for the UPI switch, products for pricing and stock, and the new order.
	//
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil { ... }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//   ...
	//   return uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		SettingsRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// OrderUoW is used by status transitions, which only touch the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW is used by catalog maintenance.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// SettingsUoW is used by settings maintenance.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// OutboxUoW is used by the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
