package sessions

import (
	"time"

	"spraying/internal/core/domain/model/editsession"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/core/domain/model/sprayer"
)

// View is a detached read model of an edit session.
type View struct {
	OrderID      kernel.UUID
	OwnerID      kernel.UUID
	StartedAt    time.Time
	Order        *order.Order
	Pool         *pool.AssignmentPool
	Removed      []sprayer.Sprayer
	StagedFields []string
	StagedValues map[order.FieldKey]string
	CommitKey    kernel.UUID
}

// ViewOf copies everything a caller may see of s.
func ViewOf(s *editsession.EditSession) View {
	return View{
		OrderID:      s.OrderID(),
		OwnerID:      s.Owner().ID(),
		StartedAt:    s.StartedAt(),
		Order:        s.Order(),
		Pool:         s.Pool(),
		Removed:      s.Removed(),
		StagedFields: s.StagedFields(),
		StagedValues: s.StagedValues(),
		CommitKey:    s.CommitKey(),
	}
}
