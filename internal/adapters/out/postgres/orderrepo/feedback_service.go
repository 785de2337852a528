package orderrepo

import (
	"context"
	"errors"
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFeedbackService stores feedback next to the order it rates.
type GormFeedbackService struct {
	db *gorm.DB
}

func NewGormFeedbackService(db *gorm.DB) *GormFeedbackService {
	return &GormFeedbackService{db: db}
}

// Submit appends feedback to a completed order. A replayed key is a no-op.
func (s *GormFeedbackService) Submit(
	ctx context.Context,
	orderID kernel.UUID,
	feedback order.Feedback,
	idempotencyKey kernel.UUID,
) error {
	if err := errors.Join(orderID.Validate(), feedback.Validate(), idempotencyKey.Validate()); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		applied, err := alreadyApplied(tx, idempotencyKey, orderID.Bytes())
		if err != nil || applied {
			return err
		}

		o, err := load(tx, orderID)
		if err != nil {
			return err
		}
		if err = o.AddFeedback(feedback); err != nil {
			return err
		}

		dto := feedbackFromDomain(orderID.Bytes(), feedback)
		if err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
			return err
		}
		return recordKey(tx, idempotencyKey, orderID.Bytes(), operationSubmitFeedback)
	})
}

// GormIdempotencyStore forgets old idempotency keys.
type GormIdempotencyStore struct {
	db *gorm.DB
}

func NewGormIdempotencyStore(db *gorm.DB) *GormIdempotencyStore {
	return &GormIdempotencyStore{db: db}
}

// PurgeOlderThan deletes keys recorded before cutoff and returns how many
// were removed.
func (s *GormIdempotencyStore) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("created_at < ?", cutoff.UTC()).Delete(&IdempotencyDTO{})
	return result.RowsAffected, result.Error
}
