// Package remotesync runs calls to remote collaborators under a per-attempt
// timeout with bounded exponential retry.
package remotesync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"spraying/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// Config bounds every remote call.
type Config struct {
	Timeout        time.Duration
	MaxRetries     uint64
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultConfig is used when no remote settings are configured.
func DefaultConfig() Config {
	return Config{
		Timeout:        5 * time.Second,
		MaxRetries:     3,
		InitialBackoff: 200 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
	}
}

// AttemptObserver is told about every attempt, failed or not.
type AttemptObserver interface {
	RemoteAttempt(operation string, err error)
}

type Policy struct {
	cfg      Config
	logger   *slog.Logger
	observer AttemptObserver
}

// NewPolicy applies cfg. logger and observer may be nil.
func NewPolicy(cfg Config, logger *slog.Logger, observer AttemptObserver) Policy {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Policy{cfg: cfg, logger: logger.With("component", "remotesync"), observer: observer}
}

// Do is Call for operations without a result.
func (p Policy) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	_, err := Call(ctx, p, operation, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Call runs fn until it succeeds, fails permanently, runs out of retries or
// ctx ends. Permanent failures are returned as they are; exhausted retries
// are wrapped in an errs.RemoteSyncError.
func Call[T any](ctx context.Context, p Policy, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	attempt := func() (T, error) {
		attemptCtx := ctx
		if p.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
			defer cancel()
		}

		v, err := fn(attemptCtx)
		if p.observer != nil {
			p.observer.RemoteAttempt(operation, err)
		}
		if err != nil && (IsPermanent(err) || ctx.Err() != nil) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	notify := func(err error, wait time.Duration) {
		p.logger.WarnContext(ctx, "remote call failed, retrying",
			"operation", operation, "error", err, "retry_in", wait)
	}

	v, err := backoff.RetryNotifyWithData(attempt, p.backOff(ctx), notify)
	if err == nil {
		return v, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return v, ctxErr
	}
	if IsPermanent(err) {
		return v, err
	}

	p.logger.ErrorContext(ctx, "remote call failed", "operation", operation, "error", err)
	return v, errs.NewRemoteSyncError(operation, err)
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if p.cfg.InitialBackoff > 0 {
		exp.InitialInterval = p.cfg.InitialBackoff
	}
	if p.cfg.MaxBackoff > 0 {
		exp.MaxInterval = p.cfg.MaxBackoff
	}
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, p.cfg.MaxRetries), ctx)
}

// IsPermanent reports errors that retrying cannot fix.
func IsPermanent(err error) bool {
	for _, target := range []error{
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrPermissionDenied,
		errs.ErrObjectNotFound,
		errs.ErrVersionIsInvalid,
		errs.ErrTransitionIsInvalid,
		errs.ErrConflict,
		context.Canceled,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
