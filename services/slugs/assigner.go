// Package slugs derives unique URL identifiers from titles.
package slugs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barmaja/apperr"
	"barmaja/database"
	"barmaja/logging"

	"github.com/jpillora/backoff"
	"gorm.io/gorm"
)

// Scope is the set of slugs a new slug must not collide with.
type Scope interface {
	Exists(ctx context.Context, slug string) (bool, error)
}

// TableScope is every row of Table, minus ExcludeID when updating.
type TableScope struct {
	DB        *gorm.DB
	Table     string
	ExcludeID uint
}

func (s TableScope) Exists(ctx context.Context, slug string) (bool, error) {
	q := s.DB.WithContext(ctx).Table(s.Table).Where("slug = ?", slug)
	if s.ExcludeID != 0 {
		q = q.Where("id <> ?", s.ExcludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetScope is an in-memory Scope.
type SetScope map[string]struct{}

func NewSetScope(slugs ...string) SetScope {
	s := make(SetScope, len(slugs))
	for _, slug := range slugs {
		s[slug] = struct{}{}
	}
	return s
}

func (s SetScope) Exists(_ context.Context, slug string) (bool, error) {
	_, ok := s[slug]
	return ok, nil
}

// Assign returns Base(kind, title) if it is free in scope, otherwise the
// first free of base-1, base-2, ...
func Assign(ctx context.Context, kind, title string, scope Scope) (string, error) {
	base := Base(kind, title)
	taken, err := scope.Exists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := scope.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

const SlugTakenMessage = "This slug is already taken, please try again."

// ErrSlugTaken is returned when a slug collides with a concurrent writer twice.
var ErrSlugTaken = apperr.FieldError("slug", SlugTakenMessage)

// WriteFunc persists the entity with slug inside tx.
type WriteFunc func(tx *gorm.DB, slug string) error

// Writer assigns a slug and persists the entity in one transaction. A unique
// violation from a concurrent writer is retried once after a short jittered
// delay; a second one fails with ErrSlugTaken.
type Writer struct {
	DB      *gorm.DB
	Kind    string
	Table   string
	Backoff *backoff.Backoff
}

func NewWriter(db *gorm.DB, kind, table string) *Writer {
	return &Writer{
		DB:    db,
		Kind:  kind,
		Table: table,
		Backoff: &backoff.Backoff{
			Min:    10 * time.Millisecond,
			Max:    100 * time.Millisecond,
			Jitter: true,
		},
	}
}

// Write assigns a slug for title, excluding excludeID from the scope, and
// calls write with it. It returns the slug that was stored.
func (w *Writer) Write(ctx context.Context, title string, excludeID uint, write WriteFunc) (string, error) {
	const attempts = 2
	for attempt := 1; ; attempt++ {
		var slug string
		err := w.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var err error
			slug, err = Assign(ctx, w.Kind, title, TableScope{DB: tx, Table: w.Table, ExcludeID: excludeID})
			if err != nil {
				return err
			}
			return write(tx, slug)
		})
		if err == nil {
			return slug, nil
		}
		if !database.IsUniqueViolation(err) {
			return "", err
		}
		if attempt >= attempts {
			logging.Warn().Str("kind", w.Kind).Str("slug", slug).Msg("slug conflict persisted after retry")
			return "", errors.Join(ErrSlugTaken, err)
		}

		delay := w.Backoff.ForAttempt(float64(attempt - 1))
		logging.Debug().Str("kind", w.Kind).Str("slug", slug).Dur("delay", delay).Msg("slug conflict, retrying")
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
}
