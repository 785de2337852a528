package kernel

import (
	"errors"
	"fmt"

	"spraying/internal/pkg/errs"
	"spraying/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when a zero Coordinates value is used.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is the WGS84 position of the field to be sprayed. It is an
// immutable value object; the zero value is invalid.
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates latitude in [-90, 90] and longitude in [-180, 180].
// Both range errors are reported together.
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(lat), c.setLongitude(lng)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate returns ErrCoordinatesAreNotConstructed for the zero value.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns degrees north.
func (c Coordinates) Latitude() float64 {
	return c.lat
}

// Longitude returns degrees east.
func (c Coordinates) Longitude() float64 {
	return c.lng
}

// String renders both axes with six decimals.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.6f,%.6f)", c.lat, c.lng)
}

// IsEqual reports whether both values are constructed and point at the same position.
func (c Coordinates) IsEqual(other Coordinates) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c == other, nil
}

func (c *Coordinates) setLatitude(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	c.lat = lat
	return nil
}

func (c *Coordinates) setLongitude(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	c.lng = lng
	return nil
}
