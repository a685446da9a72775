package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	idempotencyPurgeJob *IdempotencyPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reservations ports.IdempotencyRepository,
	clock commands.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		idempotencyPurgeJob: NewIdempotencyPurgeJob(reservations, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.idempotencyPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start idempotency purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.idempotencyPurgeJob.Stop()
}
