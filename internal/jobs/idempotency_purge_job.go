package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// IdempotencyPurgeJob deletes expired idempotency records on a schedule.
// Runs every minute to keep the records table bounded.
type IdempotencyPurgeJob struct {
	reservations ports.IdempotencyRepository
	clock        commands.Clock
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewIdempotencyPurgeJob creates a new job for purging expired idempotency records.
func NewIdempotencyPurgeJob(
	reservations ports.IdempotencyRepository,
	clock commands.Clock,
	logger *slog.Logger,
) *IdempotencyPurgeJob {
	return &IdempotencyPurgeJob{
		reservations: reservations,
		clock:        clock,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "idempotency_purge_job"),
	}
}

// Start begins the purge job to run every minute.
func (j *IdempotencyPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		purged, purgeErr := j.reservations.PurgeExpired(ctx, j.clock.Now())
		if purgeErr != nil {
			j.logger.ErrorContext(ctx, "Idempotency purge job failed", "error", purgeErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged expired idempotency records", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Idempotency purge job started (running every minute)")
	return nil
}

// Stop stops the purge job.
func (j *IdempotencyPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Idempotency purge job stopped")
}
