package commands

import (
	"context"

	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/services"
)

type SetPrimarySprayerCommandHandler struct {
	engine *Engine
}

// NewSetPrimarySprayerCommandHandler creates a handler on the shared engine.
func NewSetPrimarySprayerCommandHandler(engine *Engine) SetPrimarySprayerCommandHandler {
	return SetPrimarySprayerCommandHandler{engine: engine}
}

// Handle moves the primary flag to the given sprayer.
func (h *SetPrimarySprayerCommandHandler) Handle(ctx context.Context, cmd SetPrimarySprayerCommand) (sessions.View, error) {
	if err := cmd.Validate(); err != nil {
		return sessions.View{}, err
	}
	return h.engine.stage(ctx, cmd.OrderID(), "setPrimary", func(a actor.Actor, g *services.OrderAggregate) error {
		return g.SetPrimarySprayer(a, cmd.SprayerID())
	})
}
