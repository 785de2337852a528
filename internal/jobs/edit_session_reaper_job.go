package jobs

import (
	"context"
	"log/slog"
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// SessionExpirer is implemented by sessions.Registry.
type SessionExpirer interface {
	ExpireIdle(ctx context.Context, ttl time.Duration) ([]kernel.UUID, error)
	OpenSessions() int
}

// EditSessionReaperJob cancels edit sessions left idle for longer than ttl,
// releasing the orders they block.
type EditSessionReaperJob struct {
	sessions SessionExpirer
	ttl      time.Duration
	spec     string
	metrics  *metrics.Metrics
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewEditSessionReaperJob(
	sessions SessionExpirer,
	ttl time.Duration,
	spec string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *EditSessionReaperJob {
	return &EditSessionReaperJob{
		sessions: sessions,
		ttl:      ttl,
		spec:     spec,
		metrics:  m,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "edit_session_reaper_job"),
	}
}

// Run performs one sweep.
func (j *EditSessionReaperJob) Run(ctx context.Context) {
	expired, err := j.sessions.ExpireIdle(ctx, j.ttl)
	for _, id := range expired {
		j.logger.InfoContext(ctx, "edit session expired", "order_id", id.String(), "ttl", j.ttl)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Edit session reaper failed", "error", err)
	}
	j.metrics.SetOpenSessions(j.sessions.OpenSessions())
}

// Start schedules the job and starts its cron runner.
func (j *EditSessionReaperJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Edit session reaper job started", "schedule", j.spec, "ttl", j.ttl)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *EditSessionReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Edit session reaper job stopped")
}
