// Package locks provides short-lived mutual exclusion keyed by string.
package locks

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLocked is returned when another holder owns the key.
var ErrLocked = errors.New("lock is held by another request")

// Locker acquires a lock on key for at most ttl. The returned release func
// is safe to call more than once.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// Local is an in-process Locker for single-instance deployments and tests.
type Local struct {
	mu   sync.Mutex
	held map[string]time.Time
}

func NewLocal() *Local {
	return &Local{held: map[string]time.Time{}}
}

func (l *Local) Acquire(_ context.Context, key string, ttl time.Duration) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if expires, ok := l.held[key]; ok && now.Before(expires) {
		return nil, ErrLocked
	}
	expires := now.Add(ttl)
	l.held[key] = expires

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if l.held[key].Equal(expires) {
				delete(l.held, key)
			}
		})
	}, nil
}
