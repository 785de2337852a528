package services

import (
	"time"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/editsession"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/pkg/errs"
)

// OrderAggregate owns one live order and at most one open edit session on it.
// It is not safe for concurrent use; callers serialize access per order.
type OrderAggregate struct {
	live    *order.Order
	session *editsession.EditSession
	gate    PermissionGate
	machine StateMachine
	now     func() time.Time
}

type AggregateOption func(*OrderAggregate)

// WithAggregateClock sets the clock that stamps session activity.
func WithAggregateClock(now func() time.Time) AggregateOption {
	return func(g *OrderAggregate) {
		g.now = now
	}
}

// NewOrderAggregate wraps a persisted order with no session open.
func NewOrderAggregate(
	o *order.Order,
	gate PermissionGate,
	machine StateMachine,
	opts ...AggregateOption,
) (*OrderAggregate, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	g := &OrderAggregate{live: o.Clone(), gate: gate, machine: machine, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the id of the live order.
func (g *OrderAggregate) ID() kernel.UUID {
	return g.live.ID()
}

// Order returns a copy of the last persisted state.
func (g *OrderAggregate) Order() *order.Order {
	return g.live.Clone()
}

// IsEditing reports whether a session is open.
func (g *OrderAggregate) IsEditing() bool {
	return g.session != nil
}

// Session returns the open session, if any. Callers must not mutate it.
func (g *OrderAggregate) Session() (*editsession.EditSession, bool) {
	return g.session, g.session != nil
}

// Capabilities reports what a may do; staffing actions appear only for the
// owner of the open session.
func (g *OrderAggregate) Capabilities(a actor.Actor) []Action {
	target := g.live
	editing := false
	if g.session != nil && g.session.Owner().ID().IsEqual(a.ID()) {
		target = g.session.Order()
		editing = true
	}
	return g.gate.Capabilities(target, a, editing)
}

// Authorize checks a non-editing action against the live order.
func (g *OrderAggregate) Authorize(a actor.Actor, action Action) error {
	return g.gate.Check(g.live, a, action, false)
}

// Transition returns the live order moved to target without changing the
// aggregate. Apply the persisted result with Replace.
func (g *OrderAggregate) Transition(a actor.Actor, target order.Status) (*order.Order, error) {
	if g.session != nil {
		return nil, errs.NewConflictError("order "+g.live.ID().String(),
			"an edit session is open, status changes must wait")
	}
	next := g.live.Clone()
	if err := g.machine.Transition(next, target, a); err != nil {
		return nil, err
	}
	return next, nil
}

// Replace installs a repository-confirmed order. It refuses while a session is
// open; CompleteCommit covers that case.
func (g *OrderAggregate) Replace(confirmed *order.Order) error {
	if err := confirmed.Validate(); err != nil {
		return err
	}
	if !confirmed.IsEqual(g.live) {
		return errs.NewValueIsInvalidError("confirmed order does not match the aggregate")
	}
	if g.session != nil {
		return errs.NewConflictError("order "+g.live.ID().String(), "an edit session is open")
	}
	g.live = confirmed.Clone()
	return nil
}

// ExistingSession returns the session a already owns, or nil when editing may
// begin. Another owner's session is a conflict.
func (g *OrderAggregate) ExistingSession(a actor.Actor) (*editsession.EditSession, error) {
	if g.session == nil {
		return nil, g.gate.Check(g.live, a, Edit, false)
	}
	if !g.session.Owner().ID().IsEqual(a.ID()) {
		return nil, errs.NewConflictError("order "+g.live.ID().String(),
			"being edited by "+g.session.Owner().ID().String())
	}
	return g.session, nil
}

// BeginEdit opens a session with p as its pool. When a already owns the open
// session it is returned with its activity refreshed and p is ignored.
func (g *OrderAggregate) BeginEdit(a actor.Actor, p *pool.AssignmentPool, now time.Time) (*editsession.EditSession, error) {
	existing, err := g.ExistingSession(a)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Touch(now)
		return existing, nil
	}
	s, err := editsession.Begin(a, g.live, p, now)
	if err != nil {
		return nil, err
	}
	g.session = s
	return s, nil
}

// SetField stages a scalar field for the session owner.
func (g *OrderAggregate) SetField(a actor.Actor, key order.FieldKey, raw string) error {
	s, err := g.sessionFor(a, Edit)
	if err != nil {
		return err
	}
	return s.SetField(key, raw)
}

// AddSprayer stages a sprayer from the session pool.
func (g *OrderAggregate) AddSprayer(a actor.Actor, sprayerID kernel.UUID) (order.Assignment, error) {
	s, err := g.sessionFor(a, AddSprayer)
	if err != nil {
		return order.Assignment{}, err
	}
	return s.AddSprayer(sprayerID)
}

// RemoveSprayer unstages an assigned sprayer.
func (g *OrderAggregate) RemoveSprayer(a actor.Actor, sprayerID kernel.UUID) (order.Assignment, error) {
	s, err := g.sessionFor(a, RemoveSprayer)
	if err != nil {
		return order.Assignment{}, err
	}
	return s.RemoveSprayer(sprayerID)
}

// SetPrimarySprayer stages a new primary.
func (g *OrderAggregate) SetPrimarySprayer(a actor.Actor, sprayerID kernel.UUID) error {
	s, err := g.sessionFor(a, SetPrimary)
	if err != nil {
		return err
	}
	return s.SetPrimarySprayer(sprayerID)
}

// ToggleAutoAssign stages the flipped flag and returns it.
func (g *OrderAggregate) ToggleAutoAssign(a actor.Actor) (bool, error) {
	s, err := g.sessionFor(a, ToggleAutoAssign)
	if err != nil {
		return false, err
	}
	return s.ToggleAutoAssign()
}

// CancelEdit drops the session; the live order never saw its changes.
func (g *OrderAggregate) CancelEdit(a actor.Actor) (*order.Order, error) {
	s, err := g.ownSession(a)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.Cancel(); err != nil {
		return nil, err
	}
	g.session = nil
	return g.live.Clone(), nil
}

// Expire drops the session regardless of owner, as an idle-timeout cancel.
func (g *OrderAggregate) Expire() bool {
	if g.session == nil {
		return false
	}
	_, _, _ = g.session.Cancel()
	g.session = nil
	return true
}

// PendingCommit returns the merged order and its idempotency key. A commit
// attempt counts as owner activity even when it later fails.
func (g *OrderAggregate) PendingCommit(a actor.Actor) (*order.Order, kernel.UUID, error) {
	s, err := g.ownSession(a)
	if err != nil {
		return nil, kernel.UUID{}, err
	}
	s.Touch(g.now())
	return s.PendingCommit()
}

// CompleteCommit installs the persisted order and ends the session.
func (g *OrderAggregate) CompleteCommit(a actor.Actor, confirmed *order.Order) error {
	s, err := g.ownSession(a)
	if err != nil {
		return err
	}
	if err := s.CompleteCommit(confirmed); err != nil {
		return err
	}
	g.live = confirmed.Clone()
	g.session = nil
	return nil
}

func (g *OrderAggregate) ownSession(a actor.Actor) (*editsession.EditSession, error) {
	if g.session == nil {
		return nil, errs.NewConflictError("order "+g.live.ID().String(), "no edit session is open")
	}
	if !g.session.Owner().ID().IsEqual(a.ID()) {
		return nil, errs.NewConflictError("order "+g.live.ID().String(),
			"being edited by "+g.session.Owner().ID().String())
	}
	return g.session, nil
}

// sessionFor resolves the owner's session for a staging action. Only the owner
// passing the gate refreshes the session's activity; reads and rejected
// callers leave the idle clock running.
func (g *OrderAggregate) sessionFor(a actor.Actor, action Action) (*editsession.EditSession, error) {
	s, err := g.ownSession(a)
	if err != nil {
		return nil, err
	}
	if err := g.gate.Check(s.Order(), a, action, true); err != nil {
		return nil, err
	}
	s.Touch(g.now())
	return s, nil
}
