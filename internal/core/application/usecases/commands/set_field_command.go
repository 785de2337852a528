package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/guard"
)

var ErrSetFieldCommandIsNotConstructed = errors.New(
	"SetFieldCommand must be created via NewSetFieldCommand constructor",
)

// SetFieldCommand stages a scalar field from its text form. The value itself
// is validated by the order when the command is handled.
//
// Example:
//
//	cmd, err := NewSetFieldCommand(orderID, "schedule", "2026-10-20 08:00-10:30")
type SetFieldCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	key     order.FieldKey
	raw     string

	guard guard.ConstructorGuard
}

// NewSetFieldCommand creates a command to stage one scalar field. The key
// must name an editable field; the raw value is parsed when applied.
func NewSetFieldCommand(orderID kernel.UUID, key, raw string) (SetFieldCommand, error) {
	cmd := SetFieldCommand{raw: raw, guard: guard.NewConstructorGuard()}

	parsed, keyErr := order.ParseFieldKey(key)
	if err := errors.Join(orderID.Validate(), keyErr); err != nil {
		return SetFieldCommand{}, err
	}
	cmd.orderID = orderID
	cmd.key = parsed

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetFieldCommand) Validate() error {
	return c.guard.Validate(ErrSetFieldCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c SetFieldCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Key returns the field to change.
func (c SetFieldCommand) Key() order.FieldKey {
	return c.key
}

// Raw returns the unparsed value.
func (c SetFieldCommand) Raw() string {
	return c.raw
}
