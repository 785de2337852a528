package pool

import (
	"maps"
	"slices"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/pkg/errs"
)

// Entry is a sprayer available for the order under edit together with the
// number of orders it already carries this week.
type Entry struct {
	Sprayer          sprayer.Sprayer
	WeeklyOrderCount int

	// CountUnknown marks entries whose count was not fetched from the
	// directory, e.g. a sprayer that was assigned before the edit began and
	// removed during it.
	CountUnknown bool
}

// AssignmentPool is the local availability view used while an order is edited.
// It is filled once from the directory and never reconciled afterwards.
type AssignmentPool struct {
	buckets map[sprayer.Expertise][]Entry

	// taken remembers entries moved onto the order so removal can put back
	// the real weekly count.
	taken map[kernel.UUID]Entry
}

// NewAssignmentPool copies buckets; entries whose expertise does not match
// their bucket are moved to the right one.
func NewAssignmentPool(buckets map[sprayer.Expertise][]Entry) *AssignmentPool {
	p := &AssignmentPool{
		buckets: make(map[sprayer.Expertise][]Entry, len(buckets)),
		taken:   make(map[kernel.UUID]Entry),
	}
	for _, e := range sprayer.Expertises() {
		for _, entry := range buckets[e] {
			if err := entry.Sprayer.Validate(); err != nil {
				continue
			}
			if p.Contains(entry.Sprayer.ID()) {
				continue
			}
			p.put(entry)
		}
	}
	return p
}

// Buckets returns a copy of every non-empty bucket.
func (p *AssignmentPool) Buckets() map[sprayer.Expertise][]Entry {
	out := make(map[sprayer.Expertise][]Entry, len(p.buckets))
	for e, entries := range p.buckets {
		if len(entries) > 0 {
			out[e] = slices.Clone(entries)
		}
	}
	return out
}

// Bucket returns a copy of the entries for one tier in pool order.
func (p *AssignmentPool) Bucket(e sprayer.Expertise) []Entry {
	return slices.Clone(p.buckets[e])
}

// Len counts entries across all buckets.
func (p *AssignmentPool) Len() int {
	n := 0
	for _, entries := range p.buckets {
		n += len(entries)
	}
	return n
}

// Contains reports whether the sprayer is still a candidate.
func (p *AssignmentPool) Contains(sprayerID kernel.UUID) bool {
	_, ok := p.Find(sprayerID)
	return ok
}

// Find returns the candidate entry for a sprayer.
func (p *AssignmentPool) Find(sprayerID kernel.UUID) (Entry, bool) {
	for _, entries := range p.buckets {
		for _, entry := range entries {
			if entry.Sprayer.ID().IsEqual(sprayerID) {
				return entry, true
			}
		}
	}
	return Entry{}, false
}

// Add moves the sprayer from its bucket onto the order. The first sprayer on
// an empty order becomes primary.
func (p *AssignmentPool) Add(o *order.Order, sprayerID kernel.UUID) (order.Assignment, error) {
	entry, idx, ok := p.locate(sprayerID)
	if !ok {
		return order.Assignment{}, errs.NewObjectNotFoundError("sprayerID", sprayerID)
	}

	a, err := o.AddAssignment(entry.Sprayer)
	if err != nil {
		return order.Assignment{}, err
	}

	expertise := entry.Sprayer.Expertise()
	p.buckets[expertise] = slices.Delete(p.buckets[expertise], idx, idx+1)
	p.taken[sprayerID] = entry
	return a, nil
}

// Remove drops the sprayer from the order and appends it back to its bucket.
// Its weekly count is the one it was taken with, or zero flagged as unknown
// when it was already on the order before the pool was fetched.
func (p *AssignmentPool) Remove(o *order.Order, sprayerID kernel.UUID) (order.Assignment, error) {
	removed, err := o.RemoveAssignment(sprayerID)
	if err != nil {
		return order.Assignment{}, err
	}

	entry, ok := p.taken[sprayerID]
	if ok {
		delete(p.taken, sprayerID)
	} else {
		entry = Entry{Sprayer: removed.Sprayer(), CountUnknown: true}
	}
	p.put(entry)
	return removed, nil
}

// SetPrimary does not touch the pool; it is here so callers use one surface
// for staffing changes.
func (p *AssignmentPool) SetPrimary(o *order.Order, sprayerID kernel.UUID) error {
	return o.SetPrimarySprayer(sprayerID)
}

// Clone returns a deep copy including the taken-entry bookkeeping.
func (p *AssignmentPool) Clone() *AssignmentPool {
	c := &AssignmentPool{
		buckets: make(map[sprayer.Expertise][]Entry, len(p.buckets)),
		taken:   maps.Clone(p.taken),
	}
	for e, entries := range p.buckets {
		c.buckets[e] = slices.Clone(entries)
	}
	if c.taken == nil {
		c.taken = make(map[kernel.UUID]Entry)
	}
	return c
}

func (p *AssignmentPool) put(entry Entry) {
	e := entry.Sprayer.Expertise()
	p.buckets[e] = append(p.buckets[e], entry)
}

func (p *AssignmentPool) locate(sprayerID kernel.UUID) (Entry, int, bool) {
	for _, entries := range p.buckets {
		for i, entry := range entries {
			if entry.Sprayer.ID().IsEqual(sprayerID) {
				return entry, i, true
			}
		}
	}
	return Entry{}, 0, false
}
