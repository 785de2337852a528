package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/errs"
	"spraying/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand rates a completed order. The idempotency key also
// becomes the feedback id, so resubmitting with the same key is harmless.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	rating         int
	comment        string
	idempotencyKey kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand creates a command to rate a completed order.
// Rating must be within FeedbackRatingMin..FeedbackRatingMax.
func NewSubmitFeedbackCommand(
	orderID kernel.UUID,
	rating int,
	comment string,
	idempotencyKey kernel.UUID,
) (SubmitFeedbackCommand, error) {
	cmd := SubmitFeedbackCommand{comment: comment, guard: guard.NewConstructorGuard()}

	var ratingErr error
	if rating < order.FeedbackRatingMin || rating > order.FeedbackRatingMax {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, order.FeedbackRatingMin, order.FeedbackRatingMax)
	}
	if err := errors.Join(orderID.Validate(), idempotencyKey.Validate(), ratingErr); err != nil {
		return SubmitFeedbackCommand{}, err
	}
	cmd.orderID = orderID
	cmd.rating = rating
	cmd.idempotencyKey = idempotencyKey

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

// OrderID returns the rated order.
func (c SubmitFeedbackCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the score.
func (c SubmitFeedbackCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free text.
func (c SubmitFeedbackCommand) Comment() string {
	return c.comment
}

// IdempotencyKey returns the key that deduplicates retries.
func (c SubmitFeedbackCommand) IdempotencyKey() kernel.UUID {
	return c.idempotencyKey
}
