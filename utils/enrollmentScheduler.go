package utils

import (
	"context"
	"time"

	"barmaja/logging"

	"github.com/robfig/cron/v3"
)

// PendingSweeper removes enrollment claims left behind by interrupted checkouts.
type PendingSweeper interface {
	SweepStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
}

// InitializeEnrollmentScheduler starts the stale pending enrollment sweeper.
// The returned cron must be stopped on shutdown.
func InitializeEnrollmentScheduler(schedule string, sweeper PendingSweeper, olderThan time.Duration) (*cron.Cron, error) {
	logging.Info().Str("schedule", schedule).Msg("[ENROLLMENT-SCHEDULER] Initializing enrollment scheduler")

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		SweepPendingEnrollments(context.Background(), sweeper, olderThan)
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// SweepPendingEnrollments runs one sweep and logs the outcome.
func SweepPendingEnrollments(ctx context.Context, sweeper PendingSweeper, olderThan time.Duration) int64 {
	removed, err := sweeper.SweepStalePending(ctx, olderThan)
	if err != nil {
		logging.Error().Err(err).Msg("[ENROLLMENT-SCHEDULER] Error sweeping pending enrollments")
		return 0
	}
	if removed > 0 {
		logging.Info().Int64("removed", removed).Msg("[ENROLLMENT-SCHEDULER] Removed stale pending enrollments")
	}
	return removed
}
