package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to move an order to another status on behalf of
// the current actor. The change bypasses any edit staging and is persisted
// immediately. A caller supplied idempotency key makes retries replay the
// first result; without one every command gets a fresh key.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Confirmed, &requestKey)
//	if err != nil {
//	    return err
//	}
//	confirmed, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	target         order.Status
	idempotencyKey kernel.UUID
	replayable     bool

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand validates the order id, the target status and,
// when given, the idempotency key.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	idempotencyKey *kernel.UUID,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// IdempotencyKey returns the key the write is recorded under.
func (c TransitionOrderCommand) IdempotencyKey() kernel.UUID {
	return c.idempotencyKey
}

// IsReplayable reports whether the key came from the caller, so an earlier
// write under it may exist.
func (c TransitionOrderCommand) IsReplayable() bool {
	return c.replayable
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setIdempotencyKey(key *kernel.UUID) error {
	if key == nil {
		c.idempotencyKey = kernel.NewUUID()
		return nil
	}
	if err := key.Validate(); err != nil {
		return err
	}
	c.idempotencyKey = *key
	c.replayable = true
	return nil
}
