package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/guard"
)

var ErrBeginEditCommandIsNotConstructed = errors.New(
	"BeginEditCommand must be created via NewBeginEditCommand constructor",
)

// BeginEditCommand opens an edit session on an order for the current actor.
type BeginEditCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBeginEditCommand creates a command to open an edit session on an order.
func NewBeginEditCommand(orderID kernel.UUID) (BeginEditCommand, error) {
	if err := orderID.Validate(); err != nil {
		return BeginEditCommand{}, err
	}
	return BeginEditCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c BeginEditCommand) Validate() error {
	return c.guard.Validate(ErrBeginEditCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c BeginEditCommand) OrderID() kernel.UUID {
	return c.orderID
}
