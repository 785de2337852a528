package sprayerrepo

import (
	"context"
	"errors"

	"spraying/internal/adapters/out/postgres/orderrepo"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSprayerDirectory implements ports.SprayerDirectory using GORM.
type GormSprayerDirectory struct {
	db *gorm.DB
}

// NewGormSprayerDirectory creates a directory on db or on a transaction.
func NewGormSprayerDirectory(db *gorm.DB) *GormSprayerDirectory {
	return &GormSprayerDirectory{db: db}
}

// Add inserts a new sprayer.
func (r *GormSprayerDirectory) Add(ctx context.Context, s sprayer.Sprayer) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("sprayer "+s.ID().String(), "already exists", err)
		}
		return err
	}
	return nil
}

// Get returns errs.ErrObjectNotFound for an unknown id.
func (r *GormSprayerDirectory) Get(ctx context.Context, id kernel.UUID) (sprayer.Sprayer, error) {
	if err := id.Validate(); err != nil {
		return sprayer.Sprayer{}, err
	}

	var dto SprayerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sprayer.Sprayer{}, errs.NewObjectNotFoundError("sprayer", id.String())
		}
		return sprayer.Sprayer{}, err
	}
	return toDomain(dto)
}

// List returns every sprayer ordered by name.
func (r *GormSprayerDirectory) List(ctx context.Context) ([]sprayer.Sprayer, error) {
	var dtos []SprayerDTO
	if err := r.db.WithContext(ctx).Order("full_name").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]sprayer.Sprayer, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ListAvailable buckets every sprayer not yet assigned to the order. Each
// entry carries the number of non-cancelled orders the sprayer is assigned to
// in the ISO week of the order's spray session.
func (r *GormSprayerDirectory) ListAvailable(
	ctx context.Context,
	orderID kernel.UUID,
) (map[sprayer.Expertise][]pool.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx)

	var target orderrepo.OrderDTO
	if err := db.Select("id", "session_week").Where("id = ?", orderID.Bytes()).Limit(1).Find(&target).Error; err != nil {
		return nil, err
	}
	if target.ID == uuid.Nil {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	rows, err := db.Raw(`
		SELECT
			s.id,
			s.full_name,
			s.expertise,
			s.picture_ref,
			COUNT(o.id) AS weekly_order_count
		FROM sprayers s
		LEFT JOIN order_assignments a ON a.sprayer_id = s.id
		LEFT JOIN orders o ON o.id = a.order_id AND o.session_week = ? AND o.status <> ?
		WHERE NOT EXISTS (
			SELECT 1 FROM order_assignments x WHERE x.order_id = ? AND x.sprayer_id = s.id
		)
		GROUP BY s.id, s.full_name, s.expertise, s.picture_ref
		ORDER BY s.full_name, s.id
	`, target.SessionWeek, int(order.Cancelled), orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make(map[sprayer.Expertise][]pool.Entry)
	for rows.Next() {
		var dto SprayerDTO
		var weekly int
		if err = rows.Scan(&dto.ID, &dto.FullName, &dto.Expertise, &dto.PictureRef, &weekly); err != nil {
			return nil, err
		}

		s, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		buckets[s.Expertise()] = append(buckets[s.Expertise()], pool.Entry{Sprayer: s, WeeklyOrderCount: weekly})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
