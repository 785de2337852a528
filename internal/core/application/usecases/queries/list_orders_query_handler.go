package queries

import (
	"context"
	"strings"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order list with one SQL statement.
type ListOrdersQueryHandler struct {
	db       *gorm.DB
	identity ports.IdentityProvider
}

// NewListOrdersQueryHandler creates a handler querying db directly.
func NewListOrdersQueryHandler(db *gorm.DB, identity ports.IdentityProvider) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, identity: identity}
}

// Handle scopes the list to the current actor's role.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	a, err := h.identity.CurrentActor(ctx)
	if err != nil {
		return nil, err
	}

	var where []string
	args := []any{true}
	if len(query.Statuses()) > 0 {
		statuses := make([]int, 0, len(query.Statuses()))
		for _, s := range query.Statuses() {
			statuses = append(statuses, int(s))
		}
		where = append(where, "o.status IN ?")
		args = append(args, statuses)
	}

	// receptionists see everything, everybody else only what involves them
	if !a.HasRole(actor.Receptionist) {
		var visible []string
		if a.HasRole(actor.Farmer) {
			visible = append(visible, "o.farmer_id = ?")
			args = append(args, a.ID().Bytes())
		}
		if a.HasRole(actor.Sprayer) {
			visible = append(visible,
				"EXISTS (SELECT 1 FROM order_assignments x WHERE x.order_id = o.id AND x.sprayer_id = ?)")
			args = append(args, a.ID().Bytes())
		}
		if len(visible) == 0 {
			return []ListOrdersQueryResponse{}, nil
		}
		where = append(where, "("+strings.Join(visible, " OR ")+")")
	}

	sql := `
		SELECT
			o.id,
			o.farmer_id,
			o.status,
			o.crop_type,
			o.area,
			o.cost,
			o.location,
			o.session_start,
			o.session_end,
			o.auto_assign,
			o.version,
			a.sprayer_id
		FROM orders o
		LEFT JOIN order_assignments a ON a.order_id = o.id AND a.is_primary = ?`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY o.created_at DESC, o.id\n\t\tLIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var resp ListOrdersQueryResponse
		var id, farmerID uuid.UUID
		var primary uuid.NullUUID
		var status int

		err = rows.Scan(
			&id,
			&farmerID,
			&status,
			&resp.CropType,
			&resp.Area,
			&resp.Cost,
			&resp.Location,
			&resp.SessionStart,
			&resp.SessionEnd,
			&resp.AutoAssign,
			&resp.Version,
			&primary,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.FarmerID, err = kernel.UUIDFromBytes(farmerID[:]); err != nil {
			return nil, err
		}
		if primary.Valid {
			primaryID, idErr := kernel.UUIDFromBytes(primary.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.PrimarySprayerID = &primaryID
		}
		resp.Status = order.Status(status)
		resp.SessionStart = resp.SessionStart.UTC()
		resp.SessionEnd = resp.SessionEnd.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
