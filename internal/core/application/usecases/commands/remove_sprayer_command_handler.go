package commands

import (
	"context"

	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/services"
)

type RemoveSprayerCommandHandler struct {
	engine *Engine
}

// NewRemoveSprayerCommandHandler creates a handler on the shared engine.
func NewRemoveSprayerCommandHandler(engine *Engine) RemoveSprayerCommandHandler {
	return RemoveSprayerCommandHandler{engine: engine}
}

// Handle drops the sprayer from the draft and returns it to the pool bucket
// for its expertise.
func (h *RemoveSprayerCommandHandler) Handle(ctx context.Context, cmd RemoveSprayerCommand) (sessions.View, error) {
	if err := cmd.Validate(); err != nil {
		return sessions.View{}, err
	}
	return h.engine.stage(ctx, cmd.OrderID(), "removeSprayer", func(a actor.Actor, g *services.OrderAggregate) error {
		_, err := g.RemoveSprayer(a, cmd.SprayerID())
		return err
	})
}
