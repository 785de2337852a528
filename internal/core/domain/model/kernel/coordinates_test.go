package kernel_test

import (
	"testing"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("should accept values inside the bounds", func(t *testing.T) {
		c, err := kernel.NewCoordinates(13.7563, 100.5018)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.InDelta(t, 13.7563, c.Latitude(), 1e-9)
		assert.InDelta(t, 100.5018, c.Longitude(), 1e-9)
	})

	t.Run("should accept the exact bounds", func(t *testing.T) {
		_, err := kernel.NewCoordinates(kernel.LatitudeMax, kernel.LongitudeMin)

		require.NoError(t, err)
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(90.5, 10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should report both errors together", func(t *testing.T) {
		_, err := kernel.NewCoordinates(-91, 181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	a, _ := kernel.NewCoordinates(1, 2)
	b, _ := kernel.NewCoordinates(1, 2)
	c, _ := kernel.NewCoordinates(2, 1)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Coordinates{})
	require.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
}

func TestCoordinates_String(t *testing.T) {
	c, _ := kernel.NewCoordinates(1.5, -2.25)

	assert.Equal(t, "Coordinates(1.500000,-2.250000)", c.String())
}
