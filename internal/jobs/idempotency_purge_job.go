package jobs

import (
	"context"
	"log/slog"
	"time"

	"spraying/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// IdempotencyPurgeJob forgets idempotency keys older than ttl. Retries of a
// write are expected within minutes, so the ttl only bounds table growth.
type IdempotencyPurgeJob struct {
	store  ports.IdempotencyStore
	ttl    time.Duration
	spec   string
	now    func() time.Time
	cron   *cron.Cron
	logger *slog.Logger
}

func NewIdempotencyPurgeJob(
	store ports.IdempotencyStore,
	ttl time.Duration,
	spec string,
	logger *slog.Logger,
) *IdempotencyPurgeJob {
	return &IdempotencyPurgeJob{
		store:  store,
		ttl:    ttl,
		spec:   spec,
		now:    time.Now,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "idempotency_purge_job"),
	}
}

// Run performs one purge.
func (j *IdempotencyPurgeJob) Run(ctx context.Context) {
	cutoff := j.now().Add(-j.ttl)
	purged, err := j.store.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Idempotency purge job failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "idempotency keys purged", "count", purged, "cutoff", cutoff)
	}
}

// Start schedules the job and starts its cron runner.
func (j *IdempotencyPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Idempotency purge job started", "schedule", j.spec, "ttl", j.ttl)
	return nil
}

// Stop waits for a running purge to finish.
func (j *IdempotencyPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Idempotency purge job stopped")
}
