package locks

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseLocker(t *testing.T, l Locker) {
	t.Helper()
	ctx := context.Background()
	key := "enroll:" + uuid.NewString()

	release, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, key, time.Minute)
	assert.ErrorIs(t, err, ErrLocked)

	other, err := l.Acquire(ctx, key+"-other", time.Minute)
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	again()
}

func TestLocal(t *testing.T) {
	exerciseLocker(t, NewLocal())
}

func TestLocalExpires(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	stale, err := l.Acquire(ctx, "k", time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	fresh, err := l.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)

	// releasing the expired holder must not free the new one
	stale()
	_, err = l.Acquire(ctx, "k", time.Minute)
	assert.ErrorIs(t, err, ErrLocked)
	fresh()
}

func TestRedis(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("set TEST_REDIS_URL to run redis lock tests")
	}
	r, err := NewRedis(context.Background(), url)
	require.NoError(t, err)
	defer r.Close()
	exerciseLocker(t, r)
}
