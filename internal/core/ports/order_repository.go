package ports

import (
	"context"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
)

// OrderFilter narrows List. Zero fields do not filter.
type OrderFilter struct {
	Statuses  []order.Status
	FarmerID  *kernel.UUID
	SprayerID *kernel.UUID
	Limit     int
	Offset    int
}

// OrderRepository is the system of record for orders.
type OrderRepository interface {
	// Add persists a new order. The order must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists aggregate when the stored version equals aggregate.Version()
	// and returns the stored result with the advanced version. A version mismatch
	// fails with errs.ErrVersionIsInvalid. Replaying an idempotency key that was
	// already applied returns the stored order without writing again.
	Update(ctx context.Context, aggregate *order.Order, idempotencyKey kernel.UUID) (*order.Order, error)

	// FindApplied returns the stored order when idempotencyKey was already
	// applied to order id, and nil when the key is unknown. A key recorded for
	// another order fails with errs.ErrConflict.
	FindApplied(ctx context.Context, id kernel.UUID, idempotencyKey kernel.UUID) (*order.Order, error)

	// Get fails with errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns matching orders, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
