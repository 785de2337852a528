// Package commands contains business operations that modify system state.
// Order lifecycle commands run through the Engine, which serializes work per
// order and syncs with the repository under the retry policy. Creation
// commands use a unit of work like any other transactional write.
package commands

import (
	"context"

	"spraying/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SprayerRepoFactory provides access to the sprayer directory within a transaction.
	SprayerRepoFactory interface {
		SprayerDirectory() ports.SprayerDirectory
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SprayerUoW manages transactions for sprayer directory operations.
	SprayerUoW interface {
		TxManager
		SprayerRepoFactory
	}

	// SprayerUoWFactory creates new sprayer unit of work instances.
	SprayerUoWFactory interface {
		Create() SprayerUoW
	}
)
