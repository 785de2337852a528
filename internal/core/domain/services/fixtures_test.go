package services_test

import (
	"testing"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/sprayer"

	"github.com/stretchr/testify/require"
)

type cast struct {
	farmer       actor.Actor
	otherFarmer  actor.Actor
	receptionist actor.Actor
	primary      actor.Actor
	helper       actor.Actor
	stranger     actor.Actor
	primaryRef   sprayer.Sprayer
	helperRef    sprayer.Sprayer
}

func newCast(t *testing.T) cast {
	t.Helper()
	mk := func(r actor.Role) actor.Actor {
		a, err := actor.NewActor(kernel.NewUUID(), r)
		require.NoError(t, err)
		return a
	}
	c := cast{
		farmer:       mk(actor.Farmer),
		otherFarmer:  mk(actor.Farmer),
		receptionist: mk(actor.Receptionist),
		primary:      mk(actor.Sprayer),
		helper:       mk(actor.Sprayer),
		stranger:     mk(actor.Sprayer),
	}
	var err error
	c.primaryRef, err = sprayer.NewSprayer(c.primary.ID(), "Primary", sprayer.Expert, "")
	require.NoError(t, err)
	c.helperRef, err = sprayer.NewSprayer(c.helper.ID(), "Helper", sprayer.Beginner, "")
	require.NoError(t, err)
	return c
}

// orderIn builds an order of c.farmer in the given status, staffed with the
// primary and helper sprayers.
func (c cast) orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	session, err := order.ParseSchedule("2026-10-20 08:00-10:30")
	require.NoError(t, err)
	coords, err := kernel.NewCoordinates(13.75, 100.5)
	require.NoError(t, err)
	primary, err := order.NewAssignment(c.primaryRef, true)
	require.NoError(t, err)
	helper, err := order.NewAssignment(c.helperRef, false)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:          kernel.NewUUID(),
		FarmerID:    c.farmer.ID(),
		Status:      status,
		CropType:    "rice",
		Area:        3,
		Cost:        900,
		Coordinates: coords,
		Session:     session,
		Assignments: []order.Assignment{primary, helper},
		Version:     1,
	})
	require.NoError(t, err)
	return o
}
