package ports

import (
	"context"
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
)

// FeedbackService records farmer feedback. Submitting the same idempotency key
// twice stores the feedback once.
type FeedbackService interface {
	Submit(ctx context.Context, orderID kernel.UUID, feedback order.Feedback, idempotencyKey kernel.UUID) error
}

// IdempotencyStore forgets idempotency keys once replays are no longer expected.
type IdempotencyStore interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
