package queries

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/pkg/guard"
)

var ErrListSprayersQueryIsNotConstructed = errors.New(
	"ListSprayersQuery must be created via NewListSprayersQuery constructor",
)

// ListSprayersQuery lists the sprayer directory, optionally limited to one
// expertise tier.
//
// Example:
//
//	query, err := NewListSprayersQuery("EXPERT")
//	sprayers, err := handler.Handle(ctx, query)
type ListSprayersQuery struct {
	expertise sprayer.Expertise

	guard guard.ConstructorGuard
}

// NewListSprayersQuery accepts an empty expertise to list every tier.
func NewListSprayersQuery(expertise string) (ListSprayersQuery, error) {
	q := ListSprayersQuery{guard: guard.NewConstructorGuard()}
	if expertise == "" {
		return q, nil
	}

	e, err := sprayer.ParseExpertise(expertise)
	if err != nil {
		return ListSprayersQuery{}, err
	}
	q.expertise = e
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListSprayersQuery) Validate() error {
	return q.guard.Validate(ErrListSprayersQueryIsNotConstructed)
}

// Expertise is UnknownExpertise when every tier is listed.
func (q ListSprayersQuery) Expertise() sprayer.Expertise {
	return q.expertise
}

type ListSprayersQueryResponse struct {
	ID         kernel.UUID
	FullName   string
	Expertise  sprayer.Expertise
	PictureRef string
}
