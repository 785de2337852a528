package commands

import (
	"context"
	"log/slog"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/core/ports"
	"spraying/internal/pkg/errs"
)

// CreateSprayerCommandHandler lets receptionists add sprayers to the directory.
type CreateSprayerCommandHandler struct {
	uowFactory SprayerUoWFactory
	identity   ports.IdentityProvider
	logger     *slog.Logger
}

// NewCreateSprayerCommandHandler creates a handler backed by a unit of work
// factory.
func NewCreateSprayerCommandHandler(
	uowFactory SprayerUoWFactory,
	identity ports.IdentityProvider,
	logger *slog.Logger,
) CreateSprayerCommandHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return CreateSprayerCommandHandler{uowFactory: uowFactory, identity: identity, logger: logger}
}

// Handle adds the sprayer to the directory.
func (h *CreateSprayerCommandHandler) Handle(ctx context.Context, cmd CreateSprayerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	a, err := h.identity.CurrentActor(ctx)
	if err != nil {
		return err
	}
	if !a.HasRole(actor.Receptionist) {
		return errs.NewPermissionDeniedError(a.String(), "CREATE_SPRAYER")
	}

	s, err := sprayer.NewSprayer(cmd.SprayerID(), cmd.FullName(), cmd.Expertise(), cmd.PictureRef())
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

	if err = uow.SprayerDirectory().Add(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "sprayer created", "sprayer_id", s.ID().String(), "expertise", s.Expertise().String())
	return nil
}
