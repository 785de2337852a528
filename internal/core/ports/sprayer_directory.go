package ports

import (
	"context"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/core/domain/model/sprayer"
)

// SprayerDirectory knows every sprayer and how busy each one is.
type SprayerDirectory interface {
	Add(ctx context.Context, s sprayer.Sprayer) error
	Get(ctx context.Context, id kernel.UUID) (sprayer.Sprayer, error)
	List(ctx context.Context) ([]sprayer.Sprayer, error)

	// ListAvailable returns sprayers not assigned to the order, bucketed by
	// expertise, with the number of orders each carries in the order's week.
	ListAvailable(ctx context.Context, orderID kernel.UUID) (map[sprayer.Expertise][]pool.Entry, error)
}
