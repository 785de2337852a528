package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/guard"
)

var ErrToggleAutoAssignCommandIsNotConstructed = errors.New(
	"ToggleAutoAssignCommand must be created via NewToggleAutoAssignCommand constructor",
)

// ToggleAutoAssignCommand stages flipping the order's auto-assign flag.
type ToggleAutoAssignCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleAutoAssignCommand creates a command to flip the auto-assign flag.
func NewToggleAutoAssignCommand(orderID kernel.UUID) (ToggleAutoAssignCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ToggleAutoAssignCommand{}, err
	}
	return ToggleAutoAssignCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleAutoAssignCommand) Validate() error {
	return c.guard.Validate(ErrToggleAutoAssignCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c ToggleAutoAssignCommand) OrderID() kernel.UUID {
	return c.orderID
}
