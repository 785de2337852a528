// Package jobs provides scheduled background tasks for the spraying service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping.
//
// # Available Jobs
//
// 1. EditSessionReaperJob - Every 30 seconds cancels edit sessions idle for longer than EDIT_SESSION_TTL
// 2. IdempotencyPurgeJob - Hourly deletes idempotency keys older than IDEMPOTENCY_TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(jobs.Config{
//		EditSessionTTL: 15 * time.Minute,
//		IdempotencyTTL: 24 * time.Hour,
//	}, registry, idempotencyStore, metrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Failures are logged and retried on the next tick
// - Sessions expired before a failure are still reported
// - Failed job starts will stop any already running jobs
package jobs
