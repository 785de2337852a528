package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/guard"
)

var ErrCommitEditCommandIsNotConstructed = errors.New(
	"CommitEditCommand must be created via NewCommitEditCommand constructor",
)

// CommitEditCommand persists the caller's staged changes as one order update.
type CommitEditCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCommitEditCommand creates a command to persist an edit session.
func NewCommitEditCommand(orderID kernel.UUID) (CommitEditCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CommitEditCommand{}, err
	}
	return CommitEditCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CommitEditCommand) Validate() error {
	return c.guard.Validate(ErrCommitEditCommandIsNotConstructed)
}

// OrderID returns the order whose session is committed.
func (c CommitEditCommand) OrderID() kernel.UUID {
	return c.orderID
}
