package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a farmer's request for a spraying session.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), farmerID, "rice", 4.5, 1800,
//	    "North paddy", 13.75, 100.50, "2026-10-20 08:00-10:30", true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	farmerID    kernel.UUID
	cropType    string
	area        float64
	cost        float64
	location    string
	coordinates kernel.Coordinates
	session     order.SpraySession
	autoAssign  bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers, coordinates and the schedule.
// Area, cost and crop type are validated by the order itself.
func NewCreateOrderCommand(
	orderID, farmerID kernel.UUID,
	cropType string,
	area, cost float64,
	location string,
	lat, lng float64,
	schedule string,
	autoAssign bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		cropType:   cropType,
		area:       area,
		cost:       cost,
		location:   location,
		autoAssign: autoAssign,
		guard:      guard.NewConstructorGuard(),
	}

	coords, coordsErr := kernel.NewCoordinates(lat, lng)
	session, sessionErr := order.ParseSchedule(schedule)
	if err := errors.Join(orderID.Validate(), farmerID.Validate(), coordsErr, sessionErr); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.orderID = orderID
	cmd.farmerID = farmerID
	cmd.coordinates = coords
	cmd.session = session

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the id the new order is stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FarmerID returns the farmer placing the order.
func (c CreateOrderCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

// CropType returns the crop to spray.
func (c CreateOrderCommand) CropType() string {
	return c.cropType
}

// Area returns the field size.
func (c CreateOrderCommand) Area() float64 {
	return c.area
}

// Cost returns the quoted price.
func (c CreateOrderCommand) Cost() float64 {
	return c.cost
}

// Location returns the free-form field description, possibly empty.
func (c CreateOrderCommand) Location() string {
	return c.location
}

// Coordinates returns the field position.
func (c CreateOrderCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}

// SpraySession returns the requested time window.
func (c CreateOrderCommand) SpraySession() order.SpraySession {
	return c.session
}

// AutoAssign reports whether the farmer asked for automatic assignment.
func (c CreateOrderCommand) AutoAssign() bool {
	return c.autoAssign
}
