package commands

import (
	"context"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/services"
)

// TransitionOrderCommandHandler applies a status change and persists it under
// the command's idempotency key. The live order only changes once the
// repository has confirmed the write. A replayed key returns the stored order
// without checking the transition again.
type TransitionOrderCommandHandler struct {
	engine *Engine
}

// NewTransitionOrderCommandHandler creates a handler on the shared engine.
func NewTransitionOrderCommandHandler(engine *Engine) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{engine: engine}
}

// Handle checks the transition for the current actor and persists it. It
// fails with a conflict while the order is being edited.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *order.Order
	err := h.engine.do(ctx, cmd.OrderID(), func(ctx context.Context, a actor.Actor, g *services.OrderAggregate) error {
		if cmd.IsReplayable() {
			prior, err := h.engine.findApplied(ctx, cmd.OrderID(), cmd.IdempotencyKey())
			if err != nil {
				return err
			}
			if prior != nil {
				h.engine.logger.InfoContext(ctx, "transition replayed",
					"order_id", cmd.OrderID().String(), "actor_id", a.ID().String(),
					"idempotency_key", cmd.IdempotencyKey().String())
				result = prior
				return nil
			}
		}

		from := g.Order().Status()
		next, err := g.Transition(a, cmd.Target())
		if err != nil {
			return err
		}

		persisted, err := h.engine.update(ctx, next, cmd.IdempotencyKey())
		if err != nil {
			h.engine.logger.WarnContext(ctx, "transition not persisted",
				"order_id", cmd.OrderID().String(), "to", cmd.Target().String(), "error", err)
			return err
		}
		if err := g.Replace(persisted); err != nil {
			return err
		}

		h.engine.logger.InfoContext(ctx, "order transitioned",
			"order_id", cmd.OrderID().String(), "actor_id", a.ID().String(),
			"from", from.String(), "to", persisted.Status().String())
		result = persisted
		return nil
	})
	h.engine.metrics.Transition(cmd.Target().String(), err)
	return result, err
}
