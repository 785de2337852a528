// Package sprayerrepo is the gorm-backed sprayer directory.
package sprayerrepo

import (
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/sprayer"

	"github.com/google/uuid"
)

type SprayerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string    `gorm:"type:varchar(255);not null"`
	Expertise  int       `gorm:"not null;index"`
	PictureRef string    `gorm:"type:varchar(512)"`
	CreatedAt  time.Time
}

func (SprayerDTO) TableName() string {
	return "sprayers"
}

// Models lists every table of the package for AutoMigrate.
func Models() []any {
	return []any{&SprayerDTO{}}
}

func fromDomain(s sprayer.Sprayer) SprayerDTO {
	return SprayerDTO{
		ID:         s.ID().Bytes(),
		FullName:   s.FullName(),
		Expertise:  int(s.Expertise()),
		PictureRef: s.PictureRef(),
	}
}

func toDomain(dto SprayerDTO) (sprayer.Sprayer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return sprayer.Sprayer{}, err
	}
	return sprayer.NewSprayer(id, dto.FullName, sprayer.Expertise(dto.Expertise), dto.PictureRef)
}
