package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/guard"
)

var ErrCancelEditCommandIsNotConstructed = errors.New(
	"CancelEditCommand must be created via NewCancelEditCommand constructor",
)

// CancelEditCommand discards the caller's edit session and every staged change.
type CancelEditCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelEditCommand creates a command to discard an edit session.
func NewCancelEditCommand(orderID kernel.UUID) (CancelEditCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelEditCommand{}, err
	}
	return CancelEditCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelEditCommand) Validate() error {
	return c.guard.Validate(ErrCancelEditCommandIsNotConstructed)
}

// OrderID returns the order whose session is discarded.
func (c CancelEditCommand) OrderID() kernel.UUID {
	return c.orderID
}
