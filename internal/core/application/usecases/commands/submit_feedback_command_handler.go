package commands

import (
	"context"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/services"
	"spraying/internal/core/ports"
)

type SubmitFeedbackCommandHandler struct {
	engine   *Engine
	feedback ports.FeedbackService
}

// NewSubmitFeedbackCommandHandler creates a handler on the shared engine and
// the feedback store.
func NewSubmitFeedbackCommandHandler(engine *Engine, feedback ports.FeedbackService) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{engine: engine, feedback: feedback}
}

// Handle records the feedback once per idempotency key and returns the
// stored entry.
func (h *SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) (order.Feedback, error) {
	if err := cmd.Validate(); err != nil {
		return order.Feedback{}, err
	}

	var result order.Feedback
	err := h.engine.do(ctx, cmd.OrderID(), func(ctx context.Context, a actor.Actor, g *services.OrderAggregate) error {
		if err := g.Authorize(a, services.SubmitFeedback); err != nil {
			return err
		}

		f, err := order.NewFeedback(cmd.IdempotencyKey(), a.ID(), cmd.Rating(), cmd.Comment(), h.engine.now())
		if err != nil {
			return err
		}

		err = h.engine.policy.Do(ctx, "submitFeedback", func(ctx context.Context) error {
			return h.feedback.Submit(ctx, cmd.OrderID(), f, cmd.IdempotencyKey())
		})
		if err != nil {
			return err
		}

		h.engine.logger.InfoContext(ctx, "feedback submitted",
			"order_id", cmd.OrderID().String(), "actor_id", a.ID().String(), "rating", f.Rating())
		result = f
		return nil
	})
	return result, err
}
