package commands_test

import (
	"testing"

	"spraying/internal/core/application/usecases/commands"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id, farmer := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(id, farmer, "rice", 4.5, 1800, "North paddy",
		13.75, 100.5, "2026-10-20 08:00-10:30", true)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, farmer, cmd.FarmerID())
	assert.Equal(t, "rice", cmd.CropType())
	assert.InDelta(t, 4.5, cmd.Area(), 1e-9)
	assert.InDelta(t, 1800.0, cmd.Cost(), 1e-9)
	assert.Equal(t, "North paddy", cmd.Location())
	assert.InDelta(t, 13.75, cmd.Coordinates().Latitude(), 1e-9)
	assert.Equal(t, "2026-10-20 08:00-10:30", cmd.SpraySession().String())
	assert.True(t, cmd.AutoAssign())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), "rice", 1, 0, "",
		13.75, 100.5, "2026-10-20 08:00-10:30", false)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidCoordinatesAndSchedule(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "rice", 1, 0, "",
		95, 100.5, "2026-10-20 10:00-08:00", false)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
