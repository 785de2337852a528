package commands_test

import (
	"testing"

	"spraying/internal/core/application/usecases/commands"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSprayerCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateSprayerCommand(id, "Somchai", "expert", "pics/s.png")
	require.NoError(t, err)
	assert.Equal(t, sprayer.Expert, cmd.Expertise())

	_, err = commands.NewCreateSprayerCommand(id, "Somchai", "guru", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateSprayerCommandHandler_Handle(t *testing.T) {
	receptionist, err := actor.NewActor(kernel.NewUUID(), actor.Receptionist)
	require.NoError(t, err)
	farmer, err := actor.NewActor(kernel.NewUUID(), actor.Farmer)
	require.NoError(t, err)
	cmd, err := commands.NewCreateSprayerCommand(kernel.NewUUID(), "Somchai", "EXPERT", "")
	require.NoError(t, err)

	t.Run("receptionist adds to the directory", func(t *testing.T) {
		ctx := t.Context()
		identity := &switchableIdentity{}
		identity.As(receptionist)
		dir := new(MockSprayerDirectory)
		uow := new(MockSprayerUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("SprayerDirectory").Return(dir).Once(),
			dir.On("Add", mock.Anything, mock.MatchedBy(func(s sprayer.Sprayer) bool {
				return s.ID().IsEqual(cmd.SprayerID()) && s.FullName() == "Somchai"
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockSprayerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateSprayerCommandHandler(factory, identity, nil)
		require.NoError(t, h.Handle(ctx, cmd))
		dir.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("farmer is denied", func(t *testing.T) {
		identity := &switchableIdentity{}
		identity.As(farmer)
		factory := new(MockSprayerUoWFactory)

		h := commands.NewCreateSprayerCommandHandler(factory, identity, nil)
		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrPermissionDenied)
		factory.AssertNotCalled(t, "Create")
	})
}
