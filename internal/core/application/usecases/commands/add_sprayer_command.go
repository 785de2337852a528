package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/guard"
)

var ErrAddSprayerCommandIsNotConstructed = errors.New(
	"AddSprayerCommand must be created via NewAddSprayerCommand constructor",
)

// AddSprayerCommand stages a sprayer from the session pool onto the order. The first sprayer on an empty order becomes primary.
type AddSprayerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	sprayerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddSprayerCommand creates a command to stage a sprayer from the pool.
// Both ids must be valid.
func NewAddSprayerCommand(orderID, sprayerID kernel.UUID) (AddSprayerCommand, error) {
	if err := errors.Join(orderID.Validate(), sprayerID.Validate()); err != nil {
		return AddSprayerCommand{}, err
	}
	return AddSprayerCommand{orderID: orderID, sprayerID: sprayerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddSprayerCommandIsNotConstructed if validation fails.
func (c AddSprayerCommand) Validate() error {
	return c.guard.Validate(ErrAddSprayerCommandIsNotConstructed)
}

// OrderID returns the order whose session receives the sprayer.
func (c AddSprayerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SprayerID returns the pool sprayer to stage.
func (c AddSprayerCommand) SprayerID() kernel.UUID {
	return c.sprayerID
}
