package commands

import (
	"context"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/services"
)

// CancelEditCommandHandler returns the order as it is persisted; nothing was
// written while the session was open.
type CancelEditCommandHandler struct {
	engine *Engine
}

// NewCancelEditCommandHandler creates a handler on the shared engine.
func NewCancelEditCommandHandler(engine *Engine) CancelEditCommandHandler {
	return CancelEditCommandHandler{engine: engine}
}

// Handle drops every staged change and returns the order as it was before
// the session began.
func (h *CancelEditCommandHandler) Handle(ctx context.Context, cmd CancelEditCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *order.Order
	err := h.engine.do(ctx, cmd.OrderID(), func(ctx context.Context, a actor.Actor, g *services.OrderAggregate) error {
		restored, err := g.CancelEdit(a)
		if err != nil {
			return err
		}
		h.engine.logger.InfoContext(ctx, "edit session cancelled",
			"order_id", cmd.OrderID().String(), "actor_id", a.ID().String())
		result = restored
		return nil
	})
	return result, err
}
