package queries

import (
	"context"

	"spraying/internal/core/application/remotesync"
	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/services"
	"spraying/internal/core/ports"
	"spraying/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	registry *sessions.Registry
	orders   ports.OrderRepository
	identity ports.IdentityProvider
	policy   remotesync.Policy
}

// NewGetOrderQueryHandler creates a handler reading through the registry.
func NewGetOrderQueryHandler(
	registry *sessions.Registry,
	orders ports.OrderRepository,
	identity ports.IdentityProvider,
	policy remotesync.Policy,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{registry: registry, orders: orders, identity: identity, policy: policy}
}

// Handle returns the committed order and the caller's capabilities. Callers
// who may not see the order get errs.ErrPermissionDenied.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	a, err := h.identity.CurrentActor(ctx)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	err = h.registry.Do(ctx, query.OrderID(), loader(h.policy, h.orders, query.OrderID()),
		func(_ context.Context, g *services.OrderAggregate) error {
			o := g.Order()
			if !canView(o, a) {
				return errs.NewPermissionDeniedError(a.String(), "VIEW_ORDER")
			}

			resp.Order = o
			resp.Capabilities = g.Capabilities(a)
			if s, ok := g.Session(); ok {
				editor := s.Owner().ID()
				resp.EditorID = &editor
			}
			return nil
		})
	return resp, err
}

func loader(policy remotesync.Policy, orders ports.OrderRepository, orderID kernel.UUID) sessions.LoadFunc {
	return func(ctx context.Context) (*order.Order, error) {
		return remotesync.Call(ctx, policy, "getOrder", func(ctx context.Context) (*order.Order, error) {
			return orders.Get(ctx, orderID)
		})
	}
}

// canView admits receptionists, the owning farmer and any assigned sprayer.
func canView(o *order.Order, a actor.Actor) bool {
	switch {
	case a.HasRole(actor.Receptionist):
		return true
	case a.HasRole(actor.Farmer) && a.ID().IsEqual(o.FarmerID()):
		return true
	case a.HasRole(actor.Sprayer) && o.HasAssignment(a.ID()):
		return true
	}
	return false
}
