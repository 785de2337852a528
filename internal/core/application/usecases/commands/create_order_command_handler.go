package commands

import (
	"context"
	"log/slog"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/ports"
	"spraying/internal/pkg/errs"
)

// CreateOrderCommandHandler registers a new Pending order. Farmers create
// orders for themselves; receptionists may create them for any farmer.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityProvider
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler that stores orders through
// a fresh unit of work per call.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityProvider,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return CreateOrderCommandHandler{uowFactory: uowFactory, identity: identity, logger: logger}
}

// Handle stores a new pending order for the farmer in the command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	a, err := h.identity.CurrentActor(ctx)
	if err != nil {
		return err
	}
	if !a.HasRole(actor.Receptionist) && !(a.HasRole(actor.Farmer) && a.ID().IsEqual(cmd.FarmerID())) {
		return errs.NewPermissionDeniedError(a.String(), "CREATE_ORDER")
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.FarmerID(), cmd.CropType(), cmd.Area(), cmd.Cost(),
		cmd.Location(), cmd.Coordinates(), cmd.SpraySession(), cmd.AutoAssign())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(), "farmer_id", o.FarmerID().String(), "actor_id", a.ID().String())
	return nil
}
