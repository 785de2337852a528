package editsession

import (
	"errors"
	"maps"
	"slices"
	"time"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/pkg/errs"
)

// Staged keys for non-scalar changes, alongside the order.FieldKey values.
const (
	StagedAssignments = "assignments"
	StagedAutoAssign  = "autoAssign"
)

var (
	ErrEditSessionIsNotConstructed = errors.New("EditSession must be created via Begin")

	// ErrSessionClosed is returned by any operation on a cancelled or committed session.
	ErrSessionClosed = errs.NewConflictError("edit session", "session is closed")
)

// EditSession stages changes to one order. Every operation validates first and
// then mutates the working copy directly; the snapshots taken at Begin make
// Cancel an exact rollback of both the order and the pool.
type EditSession struct {
	owner     actor.Actor
	startedAt time.Time

	snapshot     *order.Order
	working      *order.Order
	pool         *pool.AssignmentPool
	poolSnapshot *pool.AssignmentPool

	// removed lists sprayers that were on the order at Begin and were taken off
	removed []sprayer.Sprayer
	staged  map[string]struct{}

	// commitKey identifies the current staged content; it changes on every
	// mutation so a retried commit of unchanged edits replays safely.
	commitKey kernel.UUID
	closed    bool

	lastActivity time.Time
}

// Begin opens a session on a private copy of o. The pool is owned by the
// session from here on.
func Begin(owner actor.Actor, o *order.Order, p *pool.AssignmentPool, startedAt time.Time) (*EditSession, error) {
	if err := errors.Join(owner.Validate(), o.Validate()); err != nil {
		return nil, err
	}
	if p == nil {
		p = pool.NewAssignmentPool(nil)
	}

	return &EditSession{
		owner:        owner,
		startedAt:    startedAt,
		snapshot:     o.Clone(),
		working:      o.Clone(),
		pool:         p.Clone(),
		poolSnapshot: p.Clone(),
		staged:       make(map[string]struct{}),
		commitKey:    kernel.NewUUID(),
		lastActivity: startedAt,
	}, nil
}

// Validate ensures the session was opened through Begin.
func (s *EditSession) Validate() error {
	if s == nil || s.working == nil {
		return ErrEditSessionIsNotConstructed
	}
	return nil
}

// Owner returns the actor allowed to stage changes.
func (s *EditSession) Owner() actor.Actor {
	return s.owner
}

// OrderID returns the edited order.
func (s *EditSession) OrderID() kernel.UUID {
	return s.snapshot.ID()
}

// StartedAt returns the time Begin was called.
func (s *EditSession) StartedAt() time.Time {
	return s.startedAt
}

// LastActivity is the latest time the owner worked on the session.
func (s *EditSession) LastActivity() time.Time {
	return s.lastActivity
}

// Touch records owner activity at the given time. Earlier times are ignored.
func (s *EditSession) Touch(at time.Time) {
	if at.After(s.lastActivity) {
		s.lastActivity = at
	}
}

// IsClosed reports whether the session was cancelled or committed.
func (s *EditSession) IsClosed() bool {
	return s.closed
}

// Order returns a copy of the working order.
func (s *EditSession) Order() *order.Order {
	return s.working.Clone()
}

// Snapshot returns a copy of the order as it was at Begin.
func (s *EditSession) Snapshot() *order.Order {
	return s.snapshot.Clone()
}

// Pool returns a copy of the remaining candidates.
func (s *EditSession) Pool() *pool.AssignmentPool {
	return s.pool.Clone()
}

// Removed lists sprayers taken off the order since Begin.
func (s *EditSession) Removed() []sprayer.Sprayer {
	return slices.Clone(s.removed)
}

// StagedFields returns the sorted keys changed in this session.
func (s *EditSession) StagedFields() []string {
	return slices.Sorted(maps.Keys(s.staged))
}

// StagedValues returns the draft value of every staged scalar field, in the
// textual form SetField accepts.
func (s *EditSession) StagedValues() map[order.FieldKey]string {
	values := make(map[order.FieldKey]string)
	for key := range s.staged {
		k, err := order.ParseFieldKey(key)
		if err != nil {
			continue
		}
		values[k] = s.working.FieldValue(k)
	}
	return values
}

// IsDirty reports whether anything is staged.
func (s *EditSession) IsDirty() bool {
	return len(s.staged) > 0
}

// CommitKey returns the idempotency key for the current staged content.
func (s *EditSession) CommitKey() kernel.UUID {
	return s.commitKey
}

// SetField parses and applies a scalar field. Invalid input changes nothing.
func (s *EditSession) SetField(key order.FieldKey, raw string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := s.working.ApplyField(key, raw); err != nil {
		return err
	}
	s.stage(string(key))
	return nil
}

// AddSprayer takes a sprayer from the pool onto the working order.
func (s *EditSession) AddSprayer(sprayerID kernel.UUID) (order.Assignment, error) {
	if err := s.ensureOpen(); err != nil {
		return order.Assignment{}, err
	}
	a, err := s.pool.Add(s.working, sprayerID)
	if err != nil {
		return order.Assignment{}, err
	}
	s.removed = slices.DeleteFunc(s.removed, func(r sprayer.Sprayer) bool {
		return r.ID().IsEqual(sprayerID)
	})
	s.stage(StagedAssignments)
	return a, nil
}

// RemoveSprayer puts an assigned sprayer back into the pool.
func (s *EditSession) RemoveSprayer(sprayerID kernel.UUID) (order.Assignment, error) {
	if err := s.ensureOpen(); err != nil {
		return order.Assignment{}, err
	}
	removed, err := s.pool.Remove(s.working, sprayerID)
	if err != nil {
		return order.Assignment{}, err
	}
	if s.snapshot.HasAssignment(sprayerID) {
		s.removed = append(s.removed, removed.Sprayer())
	}
	s.stage(StagedAssignments)
	return removed, nil
}

// SetPrimarySprayer moves the primary flag within the assignment list.
func (s *EditSession) SetPrimarySprayer(sprayerID kernel.UUID) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := s.pool.SetPrimary(s.working, sprayerID); err != nil {
		return err
	}
	s.stage(StagedAssignments)
	return nil
}

// ToggleAutoAssign flips the working flag and returns the new value.
func (s *EditSession) ToggleAutoAssign() (bool, error) {
	if err := s.ensureOpen(); err != nil {
		return false, err
	}
	v := s.working.ToggleAutoAssign()
	s.stage(StagedAutoAssign)
	return v, nil
}

// Cancel discards all staged changes and closes the session. The returned
// order and pool equal their state at Begin.
func (s *EditSession) Cancel() (*order.Order, *pool.AssignmentPool, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, nil, err
	}
	s.working = s.snapshot.Clone()
	s.pool = s.poolSnapshot.Clone()
	s.removed = nil
	clear(s.staged)
	s.closed = true
	return s.working.Clone(), s.pool.Clone(), nil
}

// PendingCommit returns the order to persist and the key identifying this
// exact set of staged changes. The session stays open until CompleteCommit.
func (s *EditSession) PendingCommit() (*order.Order, kernel.UUID, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, kernel.UUID{}, err
	}
	if err := s.working.ValidateInvariants(); err != nil {
		return nil, kernel.UUID{}, err
	}
	return s.working.Clone(), s.commitKey, nil
}

// CompleteCommit closes the session after the repository confirmed the write.
// The confirmed order must be the one this session edits.
func (s *EditSession) CompleteCommit(confirmed *order.Order) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := confirmed.Validate(); err != nil {
		return err
	}
	if !confirmed.IsEqual(s.snapshot) {
		return errs.NewValueIsInvalidError("confirmed order does not match the edited order")
	}
	s.working = confirmed.Clone()
	s.closed = true
	return nil
}

func (s *EditSession) ensureOpen() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

func (s *EditSession) stage(key string) {
	s.staged[key] = struct{}{}
	s.commitKey = kernel.NewUUID()
}
