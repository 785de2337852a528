package order_test

import (
	"fmt"
	"testing"

	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep persisted enum values stable", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Assigned))
		assert.Equal(t, 4, int(order.InProgress))
		assert.Equal(t, 5, int(order.SprayCompleted))
		assert.Equal(t, 6, int(order.Completed))
		assert.Equal(t, 7, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(99)} {
			err := status.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "IN_PROGRESS", order.InProgress.String())
	assert.Equal(t, "SPRAY_COMPLETED", order.SprayCompleted.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should ignore case and surrounding space", func(t *testing.T) {
		parsed, err := order.ParseStatus("  in_progress ")
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("DELIVERED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.ParseStatus("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, status := range order.Statuses() {
		expected := status == order.Completed || status == order.Cancelled
		assert.Equal(t, expected, status.IsTerminal(), status.String())
	}
}

func TestStatus_ValidateTransition(t *testing.T) {
	t.Run("should accept exactly the modeled edges", func(t *testing.T) {
		modeled := map[order.Edge]bool{}
		for _, e := range order.ModeledEdges() {
			modeled[e] = true
		}

		for _, from := range order.Statuses() {
			for _, to := range order.Statuses() {
				err := from.ValidateTransition(to)
				if modeled[order.Edge{From: from, To: to}] {
					require.NoError(t, err, "%s->%s", from, to)
					continue
				}
				require.ErrorIs(t, err, errs.ErrTransitionIsInvalid, "%s->%s", from, to)
			}
		}
	})

	t.Run("should report unmodeled edges as such", func(t *testing.T) {
		for _, e := range order.UnmodeledEdges() {
			err := e.From.ValidateTransition(e.To)

			require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
			assert.Contains(t, err.Error(), "is not modeled yet")
		}
	})

	t.Run("should keep modeled and unmodeled edges disjoint", func(t *testing.T) {
		for _, m := range order.ModeledEdges() {
			assert.NotContains(t, order.UnmodeledEdges(), m)
		}
	})

	t.Run("should reject leaving terminal statuses", func(t *testing.T) {
		for _, to := range order.Statuses() {
			require.Error(t, order.Completed.ValidateTransition(to))
			require.Error(t, order.Cancelled.ValidateTransition(to))
		}
	})
}
