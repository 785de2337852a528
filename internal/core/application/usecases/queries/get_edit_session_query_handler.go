package queries

import (
	"context"

	"spraying/internal/core/application/remotesync"
	"spraying/internal/core/application/sessions"
	"spraying/internal/core/domain/services"
	"spraying/internal/core/ports"
	"spraying/internal/pkg/errs"
)

// GetEditSessionQueryHandler fails with errs.ErrObjectNotFound when no session
// is open and with errs.ErrConflict when someone else owns it.
type GetEditSessionQueryHandler struct {
	registry *sessions.Registry
	orders   ports.OrderRepository
	identity ports.IdentityProvider
	policy   remotesync.Policy
}

// NewGetEditSessionQueryHandler creates a handler reading through the registry.
func NewGetEditSessionQueryHandler(
	registry *sessions.Registry,
	orders ports.OrderRepository,
	identity ports.IdentityProvider,
	policy remotesync.Policy,
) GetEditSessionQueryHandler {
	return GetEditSessionQueryHandler{registry: registry, orders: orders, identity: identity, policy: policy}
}

// Handle returns a snapshot of the caller's session.
func (h GetEditSessionQueryHandler) Handle(ctx context.Context, query GetEditSessionQuery) (sessions.View, error) {
	if err := query.Validate(); err != nil {
		return sessions.View{}, err
	}

	a, err := h.identity.CurrentActor(ctx)
	if err != nil {
		return sessions.View{}, err
	}

	var view sessions.View
	err = h.registry.Do(ctx, query.OrderID(), loader(h.policy, h.orders, query.OrderID()),
		func(_ context.Context, g *services.OrderAggregate) error {
			if !g.IsEditing() {
				return errs.NewObjectNotFoundError("editSession", query.OrderID().String())
			}
			s, err := g.ExistingSession(a)
			if err != nil {
				return err
			}
			view = sessions.ViewOf(s)
			return nil
		})
	return view, err
}
