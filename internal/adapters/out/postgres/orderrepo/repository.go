package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/ports"
	"spraying/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	operationUpdateOrder    = "updateOrder"
	operationSubmitFeedback = "submitFeedback"
)

var updatableColumns = []string{
	"status", "crop_type", "area", "cost", "location", "latitude", "longitude",
	"session_start", "session_end", "session_week", "auto_assign", "payment",
	"version", "updated_at",
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository on db or on a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its assignments.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes aggregate when the stored version still equals its version.
// Assignments are replaced as a whole; feedback is only ever appended.
func (r *GormOrderRepository) Update(
	ctx context.Context,
	aggregate *order.Order,
	idempotencyKey kernel.UUID,
) (*order.Order, error) {
	if err := errors.Join(aggregate.Validate(), idempotencyKey.Validate()); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)

	var stored *order.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		applied, err := alreadyApplied(tx, idempotencyKey, dto.ID)
		if err != nil {
			return err
		}
		if applied {
			stored, err = load(tx, aggregate.ID())
			return err
		}

		next := dto
		next.Version = dto.Version + 1
		next.UpdatedAt = time.Now().UTC()
		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND version = ?", dto.ID, dto.Version).
			Select(updatableColumns).
			Omit(clause.Associations).
			Updates(&next)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return missingOrStale(tx, aggregate)
		}

		if err = tx.Where("order_id = ?", dto.ID).Delete(&AssignmentDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Assignments) > 0 {
			if err = tx.Create(&dto.Assignments).Error; err != nil {
				return err
			}
		}
		if len(dto.Feedbacks) > 0 {
			if err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Feedbacks).Error; err != nil {
				return err
			}
		}
		if err = recordKey(tx, idempotencyKey, dto.ID, operationUpdateOrder); err != nil {
			return err
		}

		stored, err = load(tx, aggregate.ID())
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// FindApplied returns the current stored order when idempotencyKey was
// already applied to it, or nil when the key is unknown. A key recorded for another
// order is a conflict.
func (r *GormOrderRepository) FindApplied(
	ctx context.Context,
	id kernel.UUID,
	idempotencyKey kernel.UUID,
) (*order.Order, error) {
	if err := errors.Join(id.Validate(), idempotencyKey.Validate()); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	applied, err := alreadyApplied(db, idempotencyKey, id.Bytes())
	if err != nil || !applied {
		return nil, err
	}
	return load(db, id)
}

// Get loads the order with its assignments, feedbacks and payment.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return load(r.db.WithContext(ctx), id)
}

// List returns orders newest first, narrowed by filter.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	q := withChildren(r.db.WithContext(ctx)).Order("created_at DESC").Order("id")

	if len(filter.Statuses) > 0 {
		statuses := make([]int, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, int(s))
		}
		q = q.Where("status IN ?", statuses)
	}
	if filter.FarmerID != nil {
		q = q.Where("farmer_id = ?", filter.FarmerID.Bytes())
	}
	if filter.SprayerID != nil {
		q = q.Where("id IN (?)", r.db.Model(&AssignmentDTO{}).
			Select("order_id").
			Where("sprayer_id = ?", filter.SprayerID.Bytes()))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var dtos []OrderDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Assignments", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Feedbacks", func(db *gorm.DB) *gorm.DB { return db.Order("created_at").Order("id") })
}

func load(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	var dto OrderDTO
	if err := withChildren(db).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func missingOrStale(tx *gorm.DB, aggregate *order.Order) error {
	var current OrderDTO
	err := tx.Select("id", "version").Where("id = ?", aggregate.ID().Bytes()).Limit(1).Find(&current).Error
	if err != nil {
		return err
	}
	if current.ID == uuid.Nil {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidErrorWithCause("version",
		fmt.Errorf("order %s is at version %d, write was based on %d",
			aggregate.ID(), current.Version, aggregate.Version()))
}

// alreadyApplied reports whether key was recorded for orderID. A key recorded
// for another order is a conflict.
func alreadyApplied(tx *gorm.DB, key kernel.UUID, orderID uuid.UUID) (bool, error) {
	var rec IdempotencyDTO
	err := tx.Where("idempotency_key = ?", key.Bytes()).Limit(1).Find(&rec).Error
	if err != nil {
		return false, err
	}
	if rec.IdempotencyKey == uuid.Nil {
		return false, nil
	}
	if rec.OrderID != orderID {
		return false, errs.NewConflictError("idempotency key "+key.String(), "already used for another order")
	}
	return true, nil
}

func recordKey(tx *gorm.DB, key kernel.UUID, orderID uuid.UUID, operation string) error {
	return tx.Create(&IdempotencyDTO{
		IdempotencyKey: key.Bytes(),
		OrderID:        orderID,
		Operation:      operation,
		CreatedAt:      time.Now().UTC(),
	}).Error
}
