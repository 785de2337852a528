package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"spraying/internal/core/ports"
	"spraying/internal/pkg/metrics"
)

const (
	// ReaperSchedule sweeps idle edit sessions every 30 seconds.
	ReaperSchedule = "*/30 * * * * *"

	// PurgeSchedule purges idempotency keys at the top of every hour.
	PurgeSchedule = "0 0 * * * *"
)

type Config struct {
	EditSessionTTL time.Duration
	IdempotencyTTL time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reaperJob *EditSessionReaperJob
	purgeJob  *IdempotencyPurgeJob
}

func NewJobManager(
	cfg Config,
	sessions SessionExpirer,
	store ports.IdempotencyStore,
	m *metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reaperJob: NewEditSessionReaperJob(sessions, cfg.EditSessionTTL, ReaperSchedule, m, logger),
		purgeJob:  NewIdempotencyPurgeJob(store, cfg.IdempotencyTTL, PurgeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start edit session reaper job: %w", err)
	}

	if err := jm.purgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.reaperJob.Stop()
		return fmt.Errorf("failed to start idempotency purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.purgeJob.Stop()
	jm.reaperJob.Stop()
}
