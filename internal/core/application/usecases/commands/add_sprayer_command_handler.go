package commands

import (
	"context"

	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/services"
)

type AddSprayerCommandHandler struct {
	engine *Engine
}

// NewAddSprayerCommandHandler creates a handler on the shared engine.
func NewAddSprayerCommandHandler(engine *Engine) AddSprayerCommandHandler {
	return AddSprayerCommandHandler{engine: engine}
}

// Handle moves the sprayer from the pool into the draft assignments and
// returns the updated session view.
func (h *AddSprayerCommandHandler) Handle(ctx context.Context, cmd AddSprayerCommand) (sessions.View, error) {
	if err := cmd.Validate(); err != nil {
		return sessions.View{}, err
	}
	return h.engine.stage(ctx, cmd.OrderID(), "addSprayer", func(a actor.Actor, g *services.OrderAggregate) error {
		_, err := g.AddSprayer(a, cmd.SprayerID())
		return err
	})
}
