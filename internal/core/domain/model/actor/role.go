package actor

import (
	"fmt"
	"strings"

	"spraying/internal/pkg/errs"
)

// Role is the closed set of marketplace roles. Authorization decisions are
// made against Role values only, never against raw strings.
type Role int

const (
	// UnknownRole is the zero value and never authorizes anything.
	UnknownRole Role = iota

	// Farmer requests spraying sessions, pays and leaves feedback.
	Farmer

	// Receptionist confirms orders and staffs them with sprayers.
	Receptionist

	// Sprayer performs the work and reports progress.
	Sprayer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "UNKNOWN",
		Farmer:       "FARMER",
		Receptionist: "RECEPTIONIST",
		Sprayer:      "SPRAYER",
	}
}

// ParseRole maps the wire name (case-insensitive) onto a Role.
func ParseRole(s string) (Role, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for r, name := range getRoleStrings() {
		if r != UnknownRole && name == needle {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// String returns the wire name.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects UnknownRole and unlisted values.
func (r Role) Validate() error {
	if r == UnknownRole {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
