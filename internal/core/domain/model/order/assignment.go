package order

import (
	"spraying/internal/core/domain/model/sprayer"
)

// Assignment pairs a sprayer with the order that owns it. Assignments are
// values: the order replaces them instead of handing out pointers, so no
// assignment is ever shared between orders.
type Assignment struct {
	sprayer   sprayer.Sprayer
	isPrimary bool
}

// NewAssignment requires a constructed sprayer.
func NewAssignment(s sprayer.Sprayer, isPrimary bool) (Assignment, error) {
	if err := s.Validate(); err != nil {
		return Assignment{}, err
	}
	return Assignment{sprayer: s, isPrimary: isPrimary}, nil
}

// Sprayer returns the assigned worker.
func (a Assignment) Sprayer() sprayer.Sprayer {
	return a.sprayer
}

// IsPrimary reports whether this sprayer leads the job.
func (a Assignment) IsPrimary() bool {
	return a.isPrimary
}
