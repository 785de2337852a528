package commands_test

import (
	"errors"
	"testing"
	"time"

	"spraying/internal/core/application/remotesync"
	"spraying/internal/core/application/sessions"
	"spraying/internal/core/application/usecases/commands"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/core/domain/services"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var passthrough = func(o *order.Order) *order.Order { return o }

type engineFixture struct {
	engine   *commands.Engine
	registry *sessions.Registry
	orders   *MockOrderRepository
	sprayers *MockSprayerDirectory
	identity *switchableIdentity

	farmer       actor.Actor
	receptionist actor.Actor
	colleague    actor.Actor
	candidate    sprayer.Sprayer
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	mk := func(r actor.Role) actor.Actor {
		a, err := actor.NewActor(kernel.NewUUID(), r)
		require.NoError(t, err)
		return a
	}
	candidate, err := sprayer.NewSprayer(kernel.NewUUID(), "Candidate", sprayer.Intermediate, "")
	require.NoError(t, err)

	gate := services.NewPermissionGate()
	f := &engineFixture{
		registry:     sessions.NewRegistry(gate, services.NewStateMachine(gate)),
		orders:       new(MockOrderRepository),
		sprayers:     new(MockSprayerDirectory),
		identity:     &switchableIdentity{},
		farmer:       mk(actor.Farmer),
		receptionist: mk(actor.Receptionist),
		colleague:    mk(actor.Receptionist),
		candidate:    candidate,
	}
	policy := remotesync.NewPolicy(remotesync.Config{
		Timeout:        time.Second,
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}, nil, nil)
	f.engine = commands.NewEngine(f.registry, f.orders, f.sprayers, f.identity, policy, nil, nil)
	return f
}

func (f *engineFixture) orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	session, err := order.ParseSchedule("2026-10-20 08:00-10:30")
	require.NoError(t, err)
	coords, err := kernel.NewCoordinates(13.75, 100.5)
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:          kernel.NewUUID(),
		FarmerID:    f.farmer.ID(),
		Status:      status,
		CropType:    "rice",
		Area:        3,
		Cost:        900,
		Coordinates: coords,
		Session:     session,
		Version:     1,
	})
	require.NoError(t, err)
	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
	return o
}

func (f *engineFixture) expectPool(orderID kernel.UUID) {
	f.sprayers.On("ListAvailable", mock.Anything, orderID).Return(map[sprayer.Expertise][]pool.Entry{
		sprayer.Intermediate: {{Sprayer: f.candidate, WeeklyOrderCount: 2}},
	}, nil)
}

func (f *engineFixture) begin(t *testing.T, orderID kernel.UUID) sessions.View {
	t.Helper()
	cmd, err := commands.NewBeginEditCommand(orderID)
	require.NoError(t, err)
	h := commands.NewBeginEditCommandHandler(f.engine)
	view, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return view
}

func (f *engineFixture) commit(t *testing.T, orderID kernel.UUID) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewCommitEditCommand(orderID)
	require.NoError(t, err)
	h := commands.NewCommitEditCommandHandler(f.engine)
	return h.Handle(t.Context(), cmd)
}

func (f *engineFixture) transition(t *testing.T, orderID kernel.UUID, target order.Status) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewTransitionOrderCommand(orderID, target, nil)
	require.NoError(t, err)
	h := commands.NewTransitionOrderCommandHandler(f.engine)
	return h.Handle(t.Context(), cmd)
}

func TestTransitionOrder_ReceptionistConfirms(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.orders.On("Update", mock.Anything, mock.MatchedBy(func(next *order.Order) bool {
		return next.Status() == order.Confirmed
	}), mock.AnythingOfType("kernel.UUID")).Return(passthrough, nil).Once()
	f.identity.As(f.receptionist)

	got, err := f.transition(t, o.ID(), order.Confirmed)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, got.Status())
	assert.Equal(t, order.Pending, o.Status())
	assert.Zero(t, f.registry.OpenSessions())
	f.orders.AssertExpectations(t)
}

func TestTransitionOrder_RetryWithSameKeyReplays(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	key := kernel.NewUUID()
	var stored *order.Order
	f.orders.On("FindApplied", mock.Anything, o.ID(), key).Return(nil, nil).Once()
	f.orders.On("Update", mock.Anything, mock.Anything, key).Return(func(next *order.Order) *order.Order {
		stored = next
		return next
	}, nil).Once()
	f.identity.As(f.receptionist)
	h := commands.NewTransitionOrderCommandHandler(f.engine)

	cmd, err := commands.NewTransitionOrderCommand(o.ID(), order.Confirmed, &key)
	require.NoError(t, err)
	first, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)

	f.orders.On("FindApplied", mock.Anything, o.ID(), key).Return(stored, nil).Once()
	second, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, second.Status())
	assert.Equal(t, first.Version(), second.Version())
	f.orders.AssertNumberOfCalls(t, "Update", 1)
	f.orders.AssertNumberOfCalls(t, "FindApplied", 2)
}

func TestTransitionOrder_WithoutKeySkipsReplayLookup(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.orders.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(passthrough, nil).Once()
	f.identity.As(f.receptionist)

	_, err := f.transition(t, o.ID(), order.Confirmed)
	require.NoError(t, err)

	f.orders.AssertNotCalled(t, "FindApplied", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewTransitionOrderCommand_Key(t *testing.T) {
	orderID := kernel.NewUUID()

	fresh, err := commands.NewTransitionOrderCommand(orderID, order.Confirmed, nil)
	require.NoError(t, err)
	assert.False(t, fresh.IsReplayable())
	assert.NoError(t, fresh.IdempotencyKey().Validate())

	key := kernel.NewUUID()
	given, err := commands.NewTransitionOrderCommand(orderID, order.Confirmed, &key)
	require.NoError(t, err)
	assert.True(t, given.IsReplayable())
	assert.Equal(t, key, given.IdempotencyKey())

	var zero kernel.UUID
	_, err = commands.NewTransitionOrderCommand(orderID, order.Confirmed, &zero)
	require.Error(t, err)
}

func TestTransitionOrder_FarmerIsDenied(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.identity.As(f.farmer)

	_, err := f.transition(t, o.ID(), order.Confirmed)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrder_UnmodeledEdge(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Confirmed)
	f.identity.As(f.receptionist)

	_, err := f.transition(t, o.ID(), order.Assigned)

	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
}

func TestTransitionOrder_RemoteFailureLeavesOrderUntouched(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.orders.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
	f.identity.As(f.receptionist)

	_, err := f.transition(t, o.ID(), order.Confirmed)

	require.ErrorIs(t, err, errs.ErrRemoteSyncFailed)
	f.orders.AssertNumberOfCalls(t, "Update", 3)
	assert.Equal(t, order.Pending, o.Status())
}

func TestTransitionOrder_ConflictWhileEditing(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.expectPool(o.ID())
	f.identity.As(f.receptionist)
	f.begin(t, o.ID())

	_, err := f.transition(t, o.ID(), order.Confirmed)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, 1, f.registry.OpenSessions())
}

func TestBeginEdit_SameOwnerReusesSession(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.expectPool(o.ID())
	f.identity.As(f.receptionist)

	first := f.begin(t, o.ID())
	second := f.begin(t, o.ID())

	assert.Equal(t, first.CommitKey, second.CommitKey)
	assert.True(t, first.Pool.Contains(f.candidate.ID()))
	f.sprayers.AssertNumberOfCalls(t, "ListAvailable", 1)
	f.orders.AssertNumberOfCalls(t, "Get", 1)

	f.identity.As(f.colleague)
	cmd, err := commands.NewBeginEditCommand(o.ID())
	require.NoError(t, err)
	h := commands.NewBeginEditCommandHandler(f.engine)
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestBeginEdit_FarmerCannotEditConfirmedOrder(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Confirmed)
	f.identity.As(f.farmer)

	cmd, err := commands.NewBeginEditCommand(o.ID())
	require.NoError(t, err)
	h := commands.NewBeginEditCommandHandler(f.engine)
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	f.sprayers.AssertNotCalled(t, "ListAvailable", mock.Anything, mock.Anything)
}

func TestCommitEdit_PersistsOnlyStagedChange(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.expectPool(o.ID())
	f.identity.As(f.farmer)
	f.begin(t, o.ID())

	setCmd, err := commands.NewSetFieldCommand(o.ID(), "area", "5.5")
	require.NoError(t, err)
	setHandler := commands.NewSetFieldCommandHandler(f.engine)
	view, err := setHandler.Handle(t.Context(), setCmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"area"}, view.StagedFields)

	f.orders.On("Update", mock.Anything, mock.MatchedBy(func(merged *order.Order) bool {
		return merged.Area() == 5.5 &&
			merged.CropType() == o.CropType() &&
			merged.Cost() == o.Cost() &&
			merged.SpraySession().IsEqual(o.SpraySession()) &&
			merged.Status() == order.Pending
	}), view.CommitKey).Return(passthrough, nil).Once()

	got, err := f.commit(t, o.ID())

	require.NoError(t, err)
	assert.InDelta(t, 5.5, got.Area(), 1e-9)
	assert.Zero(t, f.registry.OpenSessions())
	f.orders.AssertExpectations(t)
}

func TestCommitEdit_FailureKeepsSessionAndKey(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.expectPool(o.ID())
	f.identity.As(f.receptionist)
	f.begin(t, o.ID())

	addCmd, err := commands.NewAddSprayerCommand(o.ID(), f.candidate.ID())
	require.NoError(t, err)
	addHandler := commands.NewAddSprayerCommandHandler(f.engine)
	view, err := addHandler.Handle(t.Context(), addCmd)
	require.NoError(t, err)
	require.True(t, view.Order.HasAssignment(f.candidate.ID()))
	assert.False(t, view.Pool.Contains(f.candidate.ID()))

	f.orders.On("Update", mock.Anything, mock.Anything, view.CommitKey).
		Return(nil, errs.NewVersionIsInvalidError("version")).Once()

	_, err = f.commit(t, o.ID())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	assert.Equal(t, 1, f.registry.OpenSessions())

	f.orders.On("Update", mock.Anything, mock.MatchedBy(func(merged *order.Order) bool {
		return merged.HasAssignment(f.candidate.ID())
	}), view.CommitKey).Return(passthrough, nil).Once()

	got, err := f.commit(t, o.ID())
	require.NoError(t, err)
	primary, ok := got.PrimarySprayer()
	require.True(t, ok)
	assert.Equal(t, f.candidate.ID(), primary.ID())
	assert.Zero(t, f.registry.OpenSessions())
	f.orders.AssertExpectations(t)
}

func TestCancelEdit_DiscardsStagedChanges(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Pending)
	f.expectPool(o.ID())
	f.identity.As(f.receptionist)
	f.begin(t, o.ID())

	toggleCmd, err := commands.NewToggleAutoAssignCommand(o.ID())
	require.NoError(t, err)
	toggleHandler := commands.NewToggleAutoAssignCommandHandler(f.engine)
	view, err := toggleHandler.Handle(t.Context(), toggleCmd)
	require.NoError(t, err)
	assert.True(t, view.Order.AutoAssign())

	cancelCmd, err := commands.NewCancelEditCommand(o.ID())
	require.NoError(t, err)
	cancelHandler := commands.NewCancelEditCommandHandler(f.engine)
	got, err := cancelHandler.Handle(t.Context(), cancelCmd)

	require.NoError(t, err)
	assert.False(t, got.AutoAssign())
	assert.Zero(t, f.registry.OpenSessions())
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitFeedback(t *testing.T) {
	f := newEngineFixture(t)
	o := f.orderIn(t, order.Completed)
	key := kernel.NewUUID()

	t.Run("farmer of a completed order", func(t *testing.T) {
		svc := new(MockFeedbackService)
		svc.On("Submit", mock.Anything, o.ID(), mock.MatchedBy(func(fb order.Feedback) bool {
			return fb.Rating() == 5 && fb.ID() == key && fb.AuthorID() == f.farmer.ID()
		}), key).Return(nil).Once()
		f.identity.As(f.farmer)

		cmd, err := commands.NewSubmitFeedbackCommand(o.ID(), 5, "great job", key)
		require.NoError(t, err)
		h := commands.NewSubmitFeedbackCommandHandler(f.engine, svc)
		got, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "great job", got.Comment())
		svc.AssertExpectations(t)
	})

	t.Run("receptionist is denied", func(t *testing.T) {
		svc := new(MockFeedbackService)
		f.identity.As(f.receptionist)

		cmd, err := commands.NewSubmitFeedbackCommand(o.ID(), 4, "", kernel.NewUUID())
		require.NoError(t, err)
		h := commands.NewSubmitFeedbackCommandHandler(f.engine, svc)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
