// Package sessions keeps the per-order aggregates that have an open edit
// session and serializes all engine work on the same order.
package sessions

import (
	"context"
	"errors"
	"sync"
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/services"

	"golang.org/x/sync/semaphore"
)

// ErrNotCached is returned by loaders that refuse to fetch an order.
var ErrNotCached = errors.New("order aggregate is not cached")

// LoadFunc fetches the persisted order when no aggregate is cached.
type LoadFunc func(ctx context.Context) (*order.Order, error)

// Registry hands out exclusive access to one order at a time. Aggregates are
// kept only while they carry an open edit session; otherwise every operation
// starts from freshly loaded state.
type Registry struct {
	gate    services.PermissionGate
	machine services.StateMachine
	now     func() time.Time

	mu      sync.Mutex
	entries map[kernel.UUID]*entry
}

type entry struct {
	sem       *semaphore.Weighted
	refs      int
	aggregate *services.OrderAggregate
	// lastActivity mirrors the cached session's owner activity so ExpireIdle
	// can pick candidates without taking the order lock
	lastActivity time.Time
}

type Option func(*Registry)

// WithClock replaces time.Now for session timestamps and idle expiry.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(gate services.PermissionGate, machine services.StateMachine, opts ...Option) *Registry {
	r := &Registry{
		gate:    gate,
		machine: machine,
		now:     time.Now,
		entries: make(map[kernel.UUID]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do runs fn while holding the order's lock. Waiting for the lock honours ctx.
func (r *Registry) Do(
	ctx context.Context,
	orderID kernel.UUID,
	load LoadFunc,
	fn func(ctx context.Context, g *services.OrderAggregate) error,
) error {
	e := r.acquire(orderID)
	defer r.release(orderID, e)

	if err := e.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer e.sem.Release(1)

	g := e.aggregate
	if g == nil {
		o, err := load(ctx)
		if err != nil {
			return err
		}
		if g, err = services.NewOrderAggregate(o, r.gate, r.machine, services.WithAggregateClock(r.now)); err != nil {
			return err
		}
	}

	err := fn(ctx, g)

	r.mu.Lock()
	if s, ok := g.Session(); ok {
		e.aggregate = g
		e.lastActivity = s.LastActivity()
	} else {
		e.aggregate = nil
	}
	r.mu.Unlock()

	return err
}

// OpenSessions counts cached aggregates, which all have an open session.
func (r *Registry) OpenSessions() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.entries {
		if e.aggregate != nil {
			n++
		}
	}
	return n
}

// ExpireIdle cancels sessions whose owner has not staged, begun or committed
// anything for longer than ttl, and returns the affected order ids. Reads and
// rejected calls by other actors do not keep a session alive.
func (r *Registry) ExpireIdle(ctx context.Context, ttl time.Duration) ([]kernel.UUID, error) {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	var candidates []kernel.UUID
	for id, e := range r.entries {
		if e.aggregate != nil && e.lastActivity.Before(cutoff) {
			candidates = append(candidates, id)
		}
	}
	r.mu.Unlock()

	notCached := func(context.Context) (*order.Order, error) { return nil, ErrNotCached }

	var expired []kernel.UUID
	for _, id := range candidates {
		err := r.Do(ctx, id, notCached, func(_ context.Context, g *services.OrderAggregate) error {
			s, ok := g.Session()
			if ok && s.LastActivity().Before(cutoff) && g.Expire() {
				expired = append(expired, id)
			}
			return nil
		})
		if err != nil && !errors.Is(err, ErrNotCached) {
			return expired, err
		}
	}
	return expired, nil
}

func (r *Registry) acquire(id kernel.UUID) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		r.entries[id] = e
	}
	e.refs++
	return e
}

func (r *Registry) release(id kernel.UUID, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.refs--
	if e.refs == 0 && e.aggregate == nil {
		delete(r.entries, id)
	}
}
