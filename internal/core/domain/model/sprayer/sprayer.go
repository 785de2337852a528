package sprayer

import (
	"errors"
	"strings"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/errs"
	"spraying/internal/pkg/guard"
)

var ErrSprayerIsNotConstructed = errors.New("Sprayer must be created via NewSprayer constructor")

// Sprayer is the reference to a field worker carried by assignments and
// pool entries. It is an immutable value; two references to the same
// sprayer compare equal through IsEqual.
type Sprayer struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	fullName   string
	expertise  Expertise
	pictureRef string

	guard guard.ConstructorGuard
}

// NewSprayer validates id, name and tier. pictureRef is optional.
func NewSprayer(id kernel.UUID, fullName string, expertise Expertise, pictureRef string) (Sprayer, error) {
	s := Sprayer{
		pictureRef: strings.TrimSpace(pictureRef),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setFullName(fullName),
		s.setExpertise(expertise),
	); err != nil {
		return Sprayer{}, err
	}

	return s, nil
}

// Validate ensures the value was created through NewSprayer.
func (s Sprayer) Validate() error {
	return s.guard.Validate(ErrSprayerIsNotConstructed)
}

// ID returns the directory id.
func (s Sprayer) ID() kernel.UUID {
	return s.id
}

// FullName returns the display name.
func (s Sprayer) FullName() string {
	return s.fullName
}

// Expertise returns the tier.
func (s Sprayer) Expertise() Expertise {
	return s.expertise
}

// PictureRef returns the optional picture reference.
func (s Sprayer) PictureRef() string {
	return s.pictureRef
}

// IsEqual compares by id only.
func (s Sprayer) IsEqual(other Sprayer) bool {
	return s.id.IsEqual(other.id)
}

func (s *Sprayer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Sprayer) setFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	s.fullName = name
	return nil
}

func (s *Sprayer) setExpertise(e Expertise) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.expertise = e
	return nil
}
