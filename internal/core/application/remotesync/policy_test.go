package remotesync_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"spraying/internal/core/application/remotesync"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu       sync.Mutex
	attempts []error
}

func (r *recorder) RemoteAttempt(_ string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, err)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.attempts)
}

func fastPolicy(obs remotesync.AttemptObserver) remotesync.Policy {
	return remotesync.NewPolicy(remotesync.Config{
		Timeout:        50 * time.Millisecond,
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}, nil, obs)
}

func TestCall_RetriesTransientFailures(t *testing.T) {
	rec := &recorder{}
	calls := 0

	v, err := remotesync.Call(t.Context(), fastPolicy(rec), "getOrder", func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("connection reset")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, rec.count())
}

func TestCall_WrapsExhaustedRetries(t *testing.T) {
	calls := 0
	cause := errors.New("503")

	err := fastPolicy(nil).Do(t.Context(), "updateOrder", func(context.Context) error {
		calls++
		return cause
	})

	require.ErrorIs(t, err, errs.ErrRemoteSyncFailed)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "updateOrder")
	assert.Equal(t, 4, calls)
}

func TestCall_DoesNotRetryPermanentFailures(t *testing.T) {
	for _, permanent := range []error{
		errs.NewVersionIsInvalidError("order"),
		errs.NewObjectNotFoundError("order", "x"),
		errs.NewValueIsInvalidError("area"),
		errs.NewPermissionDeniedError("a", "b"),
	} {
		calls := 0

		err := fastPolicy(nil).Do(t.Context(), "updateOrder", func(context.Context) error {
			calls++
			return permanent
		})

		require.ErrorIs(t, err, permanent)
		require.NotErrorIs(t, err, errs.ErrRemoteSyncFailed)
		assert.Equal(t, 1, calls)
	}
}

func TestCall_AppliesPerAttemptTimeout(t *testing.T) {
	calls := 0

	err := fastPolicy(nil).Do(t.Context(), "listAvailable", func(ctx context.Context) error {
		calls++
		<-ctx.Done()
		return ctx.Err()
	})

	require.ErrorIs(t, err, errs.ErrRemoteSyncFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 4, calls)
}

func TestCall_StopsWhenCallerCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	calls := 0

	err := fastPolicy(nil).Do(ctx, "submitFeedback", func(context.Context) error {
		calls++
		cancel()
		return errors.New("interrupted")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, remotesync.IsPermanent(errs.NewConflictError("order", "editing")))
	assert.True(t, remotesync.IsPermanent(context.Canceled))
	assert.False(t, remotesync.IsPermanent(context.DeadlineExceeded))
	assert.False(t, remotesync.IsPermanent(errors.New("timeout")))
}
