package commands

import (
	"context"

	"spraying/internal/core/application/remotesync"
	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/core/domain/services"
)

// BeginEditCommandHandler opens a session with a freshly fetched pool. When the
// caller already owns the open session it is returned as is and the directory
// is not consulted.
type BeginEditCommandHandler struct {
	engine *Engine
}

// NewBeginEditCommandHandler creates a handler on the shared engine.
func NewBeginEditCommandHandler(engine *Engine) BeginEditCommandHandler {
	return BeginEditCommandHandler{engine: engine}
}

// Handle opens a session for the current actor, or returns the one they
// already hold. The assignment pool is fetched only for a new session.
func (h *BeginEditCommandHandler) Handle(ctx context.Context, cmd BeginEditCommand) (sessions.View, error) {
	if err := cmd.Validate(); err != nil {
		return sessions.View{}, err
	}

	var view sessions.View
	err := h.engine.do(ctx, cmd.OrderID(), func(ctx context.Context, a actor.Actor, g *services.OrderAggregate) error {
		existing, err := g.ExistingSession(a)
		if err != nil {
			return err
		}
		if existing != nil {
			view = sessions.ViewOf(existing)
			return nil
		}

		buckets, err := remotesync.Call(ctx, h.engine.policy, "listAvailable",
			func(ctx context.Context) (map[sprayer.Expertise][]pool.Entry, error) {
				return h.engine.sprayers.ListAvailable(ctx, cmd.OrderID())
			})
		if err != nil {
			return err
		}

		s, err := g.BeginEdit(a, pool.NewAssignmentPool(buckets), h.engine.now())
		if err != nil {
			return err
		}

		h.engine.logger.InfoContext(ctx, "edit session opened",
			"order_id", cmd.OrderID().String(), "actor_id", a.ID().String())
		view = sessions.ViewOf(s)
		return nil
	})
	return view, err
}
