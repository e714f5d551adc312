package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweeperFunc func(ctx context.Context, olderThan time.Duration) (int64, error)

func (f sweeperFunc) SweepStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	return f(ctx, olderThan)
}

func TestSweepPendingEnrollments(t *testing.T) {
	var got time.Duration
	removed := SweepPendingEnrollments(context.Background(), sweeperFunc(func(_ context.Context, d time.Duration) (int64, error) {
		got = d
		return 2, nil
	}), 15*time.Minute)
	assert.Equal(t, int64(2), removed)
	assert.Equal(t, 15*time.Minute, got)

	removed = SweepPendingEnrollments(context.Background(), sweeperFunc(func(context.Context, time.Duration) (int64, error) {
		return 0, errors.New("db down")
	}), time.Minute)
	assert.Zero(t, removed)
}

func TestInitializeEnrollmentSchedulerRejectsBadSchedule(t *testing.T) {
	_, err := InitializeEnrollmentScheduler("not a schedule", sweeperFunc(nil), time.Minute)
	require.Error(t, err)

	c, err := InitializeEnrollmentScheduler("*/5 * * * *", sweeperFunc(nil), time.Minute)
	require.NoError(t, err)
	c.Stop()
}
