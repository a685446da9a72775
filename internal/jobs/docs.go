// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. IdempotencyPurgeJob - Runs every minute to delete expired idempotency records
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(idempotencyRepo, clock, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The purge job uses the cron expression "0 * * * * *", running once a
// minute. Expired records are inert in the meantime: a reserve attempt
// treats an expired incumbent as absent, so purging is purely about keeping
// storage bounded.
package jobs
