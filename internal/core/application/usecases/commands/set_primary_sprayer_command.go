package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/guard"
)

var ErrSetPrimarySprayerCommandIsNotConstructed = errors.New(
	"SetPrimarySprayerCommand must be created via NewSetPrimarySprayerCommand constructor",
)

// SetPrimarySprayerCommand stages which assigned sprayer drives the order's status, matched by sprayer id.
type SetPrimarySprayerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	sprayerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetPrimarySprayerCommand creates a command to mark one assigned sprayer
// as primary.
func NewSetPrimarySprayerCommand(orderID, sprayerID kernel.UUID) (SetPrimarySprayerCommand, error) {
	if err := errors.Join(orderID.Validate(), sprayerID.Validate()); err != nil {
		return SetPrimarySprayerCommand{}, err
	}
	return SetPrimarySprayerCommand{orderID: orderID, sprayerID: sprayerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPrimarySprayerCommand) Validate() error {
	return c.guard.Validate(ErrSetPrimarySprayerCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c SetPrimarySprayerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SprayerID returns the sprayer to promote.
func (c SetPrimarySprayerCommand) SprayerID() kernel.UUID {
	return c.sprayerID
}
