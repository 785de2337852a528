package commands

import (
	"context"
	"log/slog"
	"time"

	"spraying/internal/core/application/remotesync"
	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/services"
	"spraying/internal/core/ports"
	"spraying/internal/pkg/errs"
	"spraying/internal/pkg/metrics"
)

// Engine is shared by the order lifecycle command handlers.
type Engine struct {
	registry *sessions.Registry
	orders   ports.OrderRepository
	sprayers ports.SprayerDirectory
	identity ports.IdentityProvider
	policy   remotesync.Policy
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewEngine wires the collaborators every lifecycle handler shares. A nil
// logger discards output and nil metrics record nothing.
func NewEngine(
	registry *sessions.Registry,
	orders ports.OrderRepository,
	sprayers ports.SprayerDirectory,
	identity ports.IdentityProvider,
	policy remotesync.Policy,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		registry: registry,
		orders:   orders,
		sprayers: sprayers,
		identity: identity,
		policy:   policy,
		metrics:  m,
		logger:   logger.With("component", "engine"),
		now:      time.Now,
	}
}

// do resolves the caller and runs fn with exclusive access to the order.
func (e *Engine) do(
	ctx context.Context,
	orderID kernel.UUID,
	fn func(ctx context.Context, a actor.Actor, g *services.OrderAggregate) error,
) error {
	a, err := e.identity.CurrentActor(ctx)
	if err != nil {
		return err
	}

	err = e.registry.Do(ctx, orderID, e.load(orderID), func(ctx context.Context, g *services.OrderAggregate) error {
		return fn(ctx, a, g)
	})
	e.metrics.SetOpenSessions(e.registry.OpenSessions())
	return err
}

// stage runs a staging operation and returns the session afterwards.
func (e *Engine) stage(
	ctx context.Context,
	orderID kernel.UUID,
	op string,
	fn func(a actor.Actor, g *services.OrderAggregate) error,
) (sessions.View, error) {
	var view sessions.View
	err := e.do(ctx, orderID, func(ctx context.Context, a actor.Actor, g *services.OrderAggregate) error {
		if err := fn(a, g); err != nil {
			return err
		}
		s, ok := g.Session()
		if !ok {
			return errs.NewConflictError("order "+orderID.String(), "no edit session is open")
		}
		view = sessions.ViewOf(s)
		e.logger.DebugContext(ctx, "edit staged", "op", op, "order_id", orderID.String(), "actor_id", a.ID().String())
		return nil
	})
	return view, err
}

func (e *Engine) load(orderID kernel.UUID) sessions.LoadFunc {
	return func(ctx context.Context) (*order.Order, error) {
		return remotesync.Call(ctx, e.policy, "getOrder", func(ctx context.Context) (*order.Order, error) {
			return e.orders.Get(ctx, orderID)
		})
	}
}

func (e *Engine) update(ctx context.Context, o *order.Order, key kernel.UUID) (*order.Order, error) {
	return remotesync.Call(ctx, e.policy, "updateOrder", func(ctx context.Context) (*order.Order, error) {
		return e.orders.Update(ctx, o, key)
	})
}

func (e *Engine) findApplied(ctx context.Context, orderID, key kernel.UUID) (*order.Order, error) {
	return remotesync.Call(ctx, e.policy, "findApplied", func(ctx context.Context) (*order.Order, error) {
		return e.orders.FindApplied(ctx, orderID, key)
	})
}
