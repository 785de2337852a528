package commands

import (
	"errors"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/pkg/guard"
)

var ErrCreateSprayerCommandIsNotConstructed = errors.New(
	"CreateSprayerCommand must be created via NewCreateSprayerCommand constructor",
)

// CreateSprayerCommand onboards a sprayer into the directory.
type CreateSprayerCommand struct { //nolint:recvcheck //using for validation
	sprayerID  kernel.UUID
	fullName   string
	expertise  sprayer.Expertise
	pictureRef string

	guard guard.ConstructorGuard
}

// NewCreateSprayerCommand creates a command to register a sprayer. The name
// is checked by the sprayer constructor; only the id and expertise are
// validated here.
func NewCreateSprayerCommand(sprayerID kernel.UUID, fullName, expertise, pictureRef string) (CreateSprayerCommand, error) {
	cmd := CreateSprayerCommand{fullName: fullName, pictureRef: pictureRef, guard: guard.NewConstructorGuard()}

	e, expertiseErr := sprayer.ParseExpertise(expertise)
	if err := errors.Join(sprayerID.Validate(), expertiseErr); err != nil {
		return CreateSprayerCommand{}, err
	}
	cmd.sprayerID = sprayerID
	cmd.expertise = e

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSprayerCommand) Validate() error {
	return c.guard.Validate(ErrCreateSprayerCommandIsNotConstructed)
}

// SprayerID returns the id the sprayer is stored under.
func (c CreateSprayerCommand) SprayerID() kernel.UUID {
	return c.sprayerID
}

// FullName returns the display name.
func (c CreateSprayerCommand) FullName() string {
	return c.fullName
}

// Expertise returns the parsed skill level.
func (c CreateSprayerCommand) Expertise() sprayer.Expertise {
	return c.expertise
}

// PictureRef returns the optional picture reference.
func (c CreateSprayerCommand) PictureRef() string {
	return c.pictureRef
}
