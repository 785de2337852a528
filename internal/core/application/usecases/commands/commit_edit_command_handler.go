package commands

import (
	"context"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/services"
)

// CommitEditCommandHandler writes the merged order under the session's
// idempotency key. On any failure, including a version conflict or a
// cancelled context, the session stays open with its staged changes; a retry
// without further edits reuses the same key.
type CommitEditCommandHandler struct {
	engine *Engine
}

// NewCommitEditCommandHandler creates a handler on the shared engine.
func NewCommitEditCommandHandler(engine *Engine) CommitEditCommandHandler {
	return CommitEditCommandHandler{engine: engine}
}

// Handle writes the draft under the session commit key. The session stays
// open when the write fails, so the owner can retry or cancel.
func (h *CommitEditCommandHandler) Handle(ctx context.Context, cmd CommitEditCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *order.Order
	err := h.engine.do(ctx, cmd.OrderID(), func(ctx context.Context, a actor.Actor, g *services.OrderAggregate) error {
		merged, key, err := g.PendingCommit(a)
		if err != nil {
			return err
		}

		persisted, err := h.engine.update(ctx, merged, key)
		if err != nil {
			h.engine.logger.WarnContext(ctx, "edit commit failed, session kept open",
				"order_id", cmd.OrderID().String(), "idempotency_key", key.String(), "error", err)
			return err
		}
		if err := g.CompleteCommit(a, persisted); err != nil {
			return err
		}

		h.engine.logger.InfoContext(ctx, "edit session committed",
			"order_id", cmd.OrderID().String(), "actor_id", a.ID().String(), "version", persisted.Version())
		result = persisted
		return nil
	})
	h.engine.metrics.EditCommit(err)
	return result, err
}
