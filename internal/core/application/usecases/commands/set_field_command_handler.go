package commands

import (
	"context"

	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/services"
)

type SetFieldCommandHandler struct {
	engine *Engine
}

// NewSetFieldCommandHandler creates a handler on the shared engine.
func NewSetFieldCommandHandler(engine *Engine) SetFieldCommandHandler {
	return SetFieldCommandHandler{engine: engine}
}

// Handle stages the field on the draft. A value that fails to parse leaves
// the session unchanged.
func (h *SetFieldCommandHandler) Handle(ctx context.Context, cmd SetFieldCommand) (sessions.View, error) {
	if err := cmd.Validate(); err != nil {
		return sessions.View{}, err
	}
	return h.engine.stage(ctx, cmd.OrderID(), "setField", func(a actor.Actor, g *services.OrderAggregate) error {
		return g.SetField(a, cmd.Key(), cmd.Raw())
	})
}
