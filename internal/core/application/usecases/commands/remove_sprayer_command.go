package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/guard"
)

var ErrRemoveSprayerCommandIsNotConstructed = errors.New(
	"RemoveSprayerCommand must be created via NewRemoveSprayerCommand constructor",
)

// RemoveSprayerCommand stages the removal of a sprayer; the sprayer returns to the session pool.
type RemoveSprayerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	sprayerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveSprayerCommand creates a command to unstage an assigned sprayer.
func NewRemoveSprayerCommand(orderID, sprayerID kernel.UUID) (RemoveSprayerCommand, error) {
	if err := errors.Join(orderID.Validate(), sprayerID.Validate()); err != nil {
		return RemoveSprayerCommand{}, err
	}
	return RemoveSprayerCommand{orderID: orderID, sprayerID: sprayerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveSprayerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveSprayerCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c RemoveSprayerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SprayerID returns the assigned sprayer to drop.
func (c RemoveSprayerCommand) SprayerID() kernel.UUID {
	return c.sprayerID
}
