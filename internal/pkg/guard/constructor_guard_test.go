package guard_test

import (
	"errors"
	"testing"

	"spraying/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("entity not constructed")

	t.Run("constructed guard passes with and without custom error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies keep the constructed flag", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type hectares struct {
		value float64
		guard guard.ConstructorGuard
	}
	errHectaresNotConstructed := errors.New("hectares must be created via newHectares")

	newHectares := func(v float64) (hectares, error) {
		if v <= 0 {
			return hectares{}, errors.New("area must be positive")
		}
		return hectares{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor output validates", func(t *testing.T) {
		h, err := newHectares(2.5)

		require.NoError(t, err)
		require.NoError(t, h.guard.Validate(errHectaresNotConstructed))
	})

	t.Run("rejected input yields zero value that fails validation", func(t *testing.T) {
		h, err := newHectares(-1)

		require.Error(t, err)
		assert.Equal(t, errHectaresNotConstructed, h.guard.Validate(errHectaresNotConstructed))
	})
}
