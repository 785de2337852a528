package queries

import (
	"context"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/sprayer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListSprayersQueryHandler reads the sprayer directory sorted by name.
type ListSprayersQueryHandler struct {
	db *gorm.DB
}

// NewListSprayersQueryHandler creates a handler querying db directly.
func NewListSprayersQueryHandler(db *gorm.DB) ListSprayersQueryHandler {
	return ListSprayersQueryHandler{db: db}
}

// Handle returns the matching sprayers.
func (h ListSprayersQueryHandler) Handle(
	ctx context.Context,
	query ListSprayersQuery,
) ([]ListSprayersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sprayers := make([]ListSprayersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			expertise,
			picture_ref
		FROM sprayers
		WHERE ? = 0 OR expertise = ?
		ORDER BY full_name, id
	`, int(query.Expertise()), int(query.Expertise())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListSprayersQueryResponse
		var id uuid.UUID
		var expertise int

		err = rows.Scan(
			&id,
			&resp.FullName,
			&expertise,
			&resp.PictureRef,
		)
		if err != nil {
			return nil, err
		}

		sprayerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = sprayerID
		resp.Expertise = sprayer.Expertise(expertise)

		sprayers = append(sprayers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sprayers, nil
}
