package sprayer

import (
	"fmt"
	"strings"

	"spraying/internal/pkg/errs"
)

// Expertise is the tier a sprayer is classified into. Pool buckets are keyed by it.
type Expertise int

const (
	UnknownExpertise Expertise = iota
	Beginner
	Intermediate
	Expert
)

func getExpertiseStrings() map[Expertise]string {
	return map[Expertise]string{
		UnknownExpertise: "UNKNOWN",
		Beginner:         "BEGINNER",
		Intermediate:     "INTERMEDIATE",
		Expert:           "EXPERT",
	}
}

// Expertises lists the valid tiers from least to most experienced.
func Expertises() []Expertise {
	return []Expertise{Beginner, Intermediate, Expert}
}

// ParseExpertise maps a wire name such as "EXPERT" onto a tier.
func ParseExpertise(s string) (Expertise, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for _, e := range Expertises() {
		if e.String() == needle {
			return e, nil
		}
	}
	return UnknownExpertise, errs.NewValueIsInvalidErrorWithCause(
		"expertise", fmt.Errorf("%q is not a known expertise tier", s))
}

// String returns the wire name.
func (e Expertise) String() string {
	if str, ok := getExpertiseStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects values outside Beginner..Expert.
func (e Expertise) Validate() error {
	if e < Beginner || e > Expert {
		return errs.NewValueIsInvalidErrorWithCause("expertise", fmt.Errorf("%d is not a valid expertise tier", e))
	}
	return nil
}
