package services_test

import (
	"testing"
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/core/domain/services"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregate(t *testing.T, o *order.Order) *services.OrderAggregate {
	t.Helper()
	gate := services.NewPermissionGate()
	g, err := services.NewOrderAggregate(o, gate, services.NewStateMachine(gate))
	require.NoError(t, err)
	return g
}

func TestOrderAggregate_Transition(t *testing.T) {
	c := newCast(t)

	t.Run("returns the next state without touching the live order", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Pending))

		next, err := g.Transition(c.receptionist, order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next.Status())
		assert.Equal(t, order.Pending, g.Order().Status())

		require.NoError(t, g.Replace(next))
		assert.Equal(t, order.Confirmed, g.Order().Status())
	})

	t.Run("conflicts while an edit session is open", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Pending))
		_, err := g.BeginEdit(c.receptionist, pool.NewAssignmentPool(nil), time.Now())
		require.NoError(t, err)

		_, err = g.Transition(c.receptionist, order.Confirmed)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Pending, g.Order().Status())
	})

	t.Run("replace rejects another order", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Pending))

		require.ErrorIs(t, g.Replace(c.orderIn(t, order.Pending)), errs.ErrValueIsInvalid)
	})
}

func TestOrderAggregate_BeginEdit(t *testing.T) {
	c := newCast(t)

	t.Run("same owner gets the existing session", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Confirmed))
		first, err := g.BeginEdit(c.receptionist, pool.NewAssignmentPool(nil), time.Now())
		require.NoError(t, err)

		second, err := g.BeginEdit(c.receptionist, nil, time.Now())

		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("another owner conflicts", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Pending))
		_, err := g.BeginEdit(c.receptionist, nil, time.Now())
		require.NoError(t, err)

		_, err = g.BeginEdit(c.farmer, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("frozen orders cannot be edited", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.InProgress))

		_, err := g.BeginEdit(c.receptionist, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.False(t, g.IsEditing())
	})

	t.Run("farmer edits only own pending order", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Confirmed))

		_, err := g.BeginEdit(c.farmer, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}

func TestOrderAggregate_EditFlow(t *testing.T) {
	c := newCast(t)
	extra, err := sprayer.NewSprayer(kernel.NewUUID(), "Extra", sprayer.Intermediate, "")
	require.NoError(t, err)
	newPool := func() *pool.AssignmentPool {
		return pool.NewAssignmentPool(map[sprayer.Expertise][]pool.Entry{
			sprayer.Intermediate: {{Sprayer: extra, WeeklyOrderCount: 1}},
		})
	}

	t.Run("staged edits stay off the live order until commit", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Confirmed))
		_, err := g.BeginEdit(c.receptionist, newPool(), time.Now())
		require.NoError(t, err)

		require.NoError(t, g.SetField(c.receptionist, order.FieldArea, "5.5"))
		_, err = g.AddSprayer(c.receptionist, extra.ID())
		require.NoError(t, err)
		require.NoError(t, g.SetPrimarySprayer(c.receptionist, extra.ID()))
		_, err = g.RemoveSprayer(c.receptionist, c.helperRef.ID())
		require.NoError(t, err)
		_, err = g.ToggleAutoAssign(c.receptionist)
		require.NoError(t, err)

		assert.InDelta(t, 3.0, g.Order().Area(), 1e-9)

		pending, key, err := g.PendingCommit(c.receptionist)
		require.NoError(t, err)
		assert.NotEqual(t, kernel.UUID{}, key)
		assert.InDelta(t, 5.5, pending.Area(), 1e-9)
		primary, ok := pending.PrimarySprayer()
		require.True(t, ok)
		assert.True(t, primary.ID().IsEqual(extra.ID()))

		require.NoError(t, g.CompleteCommit(c.receptionist, pending))
		assert.False(t, g.IsEditing())
		assert.InDelta(t, 5.5, g.Order().Area(), 1e-9)
		assert.True(t, g.Order().AutoAssign())
	})

	t.Run("only the owner may stage", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Pending))
		_, err := g.BeginEdit(c.farmer, newPool(), time.Now())
		require.NoError(t, err)

		require.ErrorIs(t, g.SetField(c.receptionist, order.FieldArea, "2"), errs.ErrConflict)
		_, err = g.CancelEdit(c.receptionist)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("farmer session may not staff", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Pending))
		_, err := g.BeginEdit(c.farmer, newPool(), time.Now())
		require.NoError(t, err)

		_, err = g.AddSprayer(c.farmer, extra.ID())

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		require.NoError(t, g.SetField(c.farmer, order.FieldCropType, "corn"))
	})

	t.Run("cancel discards everything", func(t *testing.T) {
		o := c.orderIn(t, order.Confirmed)
		g := newAggregate(t, o)
		_, err := g.BeginEdit(c.receptionist, newPool(), time.Now())
		require.NoError(t, err)
		require.NoError(t, g.SetField(c.receptionist, order.FieldCost, "12"))

		restored, err := g.CancelEdit(c.receptionist)

		require.NoError(t, err)
		assert.Equal(t, o, restored)
		assert.False(t, g.IsEditing())
	})

	t.Run("staging without a session conflicts", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Confirmed))

		require.ErrorIs(t, g.SetField(c.receptionist, order.FieldArea, "1"), errs.ErrConflict)
		_, _, err := g.PendingCommit(c.receptionist)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("expire drops any session", func(t *testing.T) {
		g := newAggregate(t, c.orderIn(t, order.Confirmed))
		_, err := g.BeginEdit(c.receptionist, newPool(), time.Now())
		require.NoError(t, err)

		assert.True(t, g.Expire())
		assert.False(t, g.Expire())
		assert.False(t, g.IsEditing())
	})
}

func TestOrderAggregate_Capabilities(t *testing.T) {
	c := newCast(t)
	g := newAggregate(t, c.orderIn(t, order.Confirmed))

	assert.Equal(t, []services.Action{services.Edit}, g.Capabilities(c.receptionist))

	_, err := g.BeginEdit(c.receptionist, nil, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []services.Action{
		services.Edit, services.AddSprayer, services.RemoveSprayer, services.SetPrimary, services.ToggleAutoAssign,
	}, g.Capabilities(c.receptionist))
}

func TestOrderAggregate_SessionActivity(t *testing.T) {
	c := newCast(t)
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	now := start
	gate := services.NewPermissionGate()
	g, err := services.NewOrderAggregate(c.orderIn(t, order.Pending), gate, services.NewStateMachine(gate),
		services.WithAggregateClock(func() time.Time { return now }))
	require.NoError(t, err)
	s, err := g.BeginEdit(c.receptionist, pool.NewAssignmentPool(nil), start)
	require.NoError(t, err)

	now = start.Add(time.Minute)
	_, err = g.Transition(c.farmer, order.Confirmed)
	require.Error(t, err)
	_, err = g.ExistingSession(c.farmer)
	require.Error(t, err)
	require.Error(t, g.SetField(c.farmer, order.FieldArea, "7"))
	_ = g.Capabilities(c.stranger)
	assert.Equal(t, start, s.LastActivity())

	now = start.Add(2 * time.Minute)
	require.NoError(t, g.SetField(c.receptionist, order.FieldArea, "7"))
	assert.Equal(t, start.Add(2*time.Minute), s.LastActivity())

	_, err = g.BeginEdit(c.receptionist, nil, start.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, start.Add(3*time.Minute), s.LastActivity())
}
