package queries

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/guard"
)

var ErrGetEditSessionQueryIsNotConstructed = errors.New(
	"GetEditSessionQuery must be created via NewGetEditSessionQuery constructor",
)

// GetEditSessionQuery returns the caller's open edit session on an order:
// the working copy, the local pool and the staged fields.
type GetEditSessionQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEditSessionQuery creates a query for the session on orderID.
func NewGetEditSessionQuery(orderID kernel.UUID) (GetEditSessionQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetEditSessionQuery{}, err
	}
	return GetEditSessionQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEditSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetEditSessionQueryIsNotConstructed)
}

// OrderID returns the edited order.
func (q GetEditSessionQuery) OrderID() kernel.UUID {
	return q.orderID
}
