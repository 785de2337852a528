package commands

import (
	"context"

	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/services"
)

type ToggleAutoAssignCommandHandler struct {
	engine *Engine
}

// NewToggleAutoAssignCommandHandler creates a handler on the shared engine.
func NewToggleAutoAssignCommandHandler(engine *Engine) ToggleAutoAssignCommandHandler {
	return ToggleAutoAssignCommandHandler{engine: engine}
}

// Handle flips the staged flag and returns its new value.
func (h *ToggleAutoAssignCommandHandler) Handle(ctx context.Context, cmd ToggleAutoAssignCommand) (sessions.View, error) {
	if err := cmd.Validate(); err != nil {
		return sessions.View{}, err
	}
	return h.engine.stage(ctx, cmd.OrderID(), "toggleAutoAssign", func(a actor.Actor, g *services.OrderAggregate) error {
		_, err := g.ToggleAutoAssign(a)
		return err
	})
}
