package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/errs"
	"spraying/internal/pkg/guard"
)

const (
	FeedbackRatingMin     = 1
	FeedbackRatingMax     = 5
	FeedbackCommentMaxLen = 2000
)

var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback constructor")

// Feedback is the farmer's rating of a completed order.
type Feedback struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	authorID  kernel.UUID
	rating    int
	comment   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewFeedback validates the ids and the rating range. The comment is trimmed
// and may not exceed FeedbackCommentMaxLen runes.
func NewFeedback(id, authorID kernel.UUID, rating int, comment string, createdAt time.Time) (Feedback, error) {
	f := Feedback{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		authorID.Validate(),
		f.setRating(rating),
		f.setComment(comment),
	); err != nil {
		return Feedback{}, err
	}
	f.id = id
	f.authorID = authorID

	return f, nil
}

// Validate ensures the feedback was created through NewFeedback.
func (f Feedback) Validate() error {
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}

// ID returns the feedback id, which is also its idempotency key.
func (f Feedback) ID() kernel.UUID {
	return f.id
}

// AuthorID returns the farmer who wrote it.
func (f Feedback) AuthorID() kernel.UUID {
	return f.authorID
}

// Rating returns the score.
func (f Feedback) Rating() int {
	return f.rating
}

// Comment returns the free text, possibly empty.
func (f Feedback) Comment() string {
	return f.comment
}

// CreatedAt returns the submission time.
func (f Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) setRating(rating int) error {
	if rating < FeedbackRatingMin || rating > FeedbackRatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, FeedbackRatingMin, FeedbackRatingMax)
	}
	f.rating = rating
	return nil
}

func (f *Feedback) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if n := utf8.RuneCountInString(comment); n > FeedbackCommentMaxLen {
		return errs.NewValueIsInvalidErrorWithCause("comment is invalid",
			fmt.Errorf("%d characters exceeds %d", n, FeedbackCommentMaxLen))
	}
	f.comment = comment
	return nil
}
