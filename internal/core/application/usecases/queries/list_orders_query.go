// Package queries contains read operations. List queries read straight from
// the database into flat read models; order and session lookups go through
// the session registry so they observe the same state the commands do.
package queries

import (
	"errors"
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListOrdersQuery lists the orders visible to the caller, newest first.
// Farmers see their own orders, sprayers the orders they are assigned to and
// receptionists every order.
//
// Example:
//
//	query, err := NewListOrdersQuery([]string{"PENDING", "CONFIRMED"}, 20, 0)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	statuses []order.Status
	limit    int
	offset   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses status names. A limit of 0 selects DefaultListLimit.
func NewListOrdersQuery(statuses []string, limit, offset int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{limit: limit, offset: offset, guard: guard.NewConstructorGuard()}

	var parseErrs []error
	for _, raw := range statuses {
		s, err := order.ParseStatus(raw)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		q.statuses = append(q.statuses, s)
	}
	if err := errors.Join(parseErrs...); err != nil {
		return ListOrdersQuery{}, err
	}

	if q.limit <= 0 {
		q.limit = DefaultListLimit
	}
	q.limit = min(q.limit, MaxListLimit)
	q.offset = max(q.offset, 0)

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter; empty means every status.
func (q ListOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

// ListOrdersQueryResponse is one row of the order list.
type ListOrdersQueryResponse struct {
	ID               kernel.UUID
	FarmerID         kernel.UUID
	Status           order.Status
	CropType         string
	Area             float64
	Cost             float64
	Location         string
	SessionStart     time.Time
	SessionEnd       time.Time
	AutoAssign       bool
	PrimarySprayerID *kernel.UUID
	Version          int64
}
