package comments

import (
	"context"
	"strings"
	"testing"
	"time"

	"barmaja/apperr"
	"barmaja/auth"
	"barmaja/models"
	"barmaja/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanEdit(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	author := auth.Actor{UserID: 7, Role: models.RoleStudent}
	stranger := auth.Actor{UserID: 8, Role: models.RoleStudent}
	admin := auth.Actor{UserID: 1, Role: models.RoleAdmin}

	tests := []struct {
		name  string
		actor auth.Actor
		after time.Duration
		want  error
	}{
		{"author fresh", author, time.Minute, nil},
		{"author at window edge", author, EditWindow, nil},
		{"author too late", author, EditWindow + time.Second, ErrEditExpired},
		{"admin fresh", admin, time.Minute, nil},
		{"admin too late", admin, time.Hour, ErrEditExpired},
		{"other student", stranger, time.Minute, ErrNotEditable},
		{"anonymous", auth.Anonymous, time.Minute, ErrNotEditable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanEdit(tt.actor, author.UserID, created, created.Add(tt.after))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		})
	}
}

func TestCanDelete(t *testing.T) {
	assert.NoError(t, CanDelete(auth.Actor{UserID: 7, Role: models.RoleStudent}, 7))
	assert.NoError(t, CanDelete(auth.Actor{UserID: 1, Role: models.RoleAdmin}, 7))
	assert.ErrorIs(t, CanDelete(auth.Actor{UserID: 8, Role: models.RoleStudent}, 7), ErrNotDeletable)
}

func TestNormalize(t *testing.T) {
	text, err := normalize("comment", "   great lesson  ")
	require.NoError(t, err)
	assert.Equal(t, "great lesson", text)

	for _, bad := range []string{"", "   \n\t ", "ok", strings.Repeat("x", 1001)} {
		_, err := normalize("comment", bad)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "%q", bad)
	}

	// length counts characters, not bytes
	_, err = normalize("comment", "شكر")
	assert.NoError(t, err)
}

func TestLessonCommentLifecycle(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	s := NewService(db)
	author := auth.ActorFor(testutil.SeedUser(t, db, "author@example.com", models.RoleStudent))
	other := auth.ActorFor(testutil.SeedUser(t, db, "other@example.com", models.RoleStudent))
	admin := auth.ActorFor(testutil.SeedUser(t, db, "admin@example.com", models.RoleAdmin))
	course := testutil.SeedCourse(t, db, "go-basics", 0, true)
	lesson := testutil.SeedLesson(t, db, course.ID, 1, true)

	_, err := s.AddLessonComment(ctx, auth.Anonymous, lesson.ID, "hello there")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, err = s.AddLessonComment(ctx, author, 9999, "hello there")
	assert.ErrorIs(t, err, ErrLessonNotFound)

	c, err := s.AddLessonComment(ctx, author, lesson.ID, "  hello there  ")
	require.NoError(t, err)
	assert.Equal(t, "hello there", c.Comment)

	_, err = s.UpdateLessonComment(ctx, other, c.ID, "hijacked")
	assert.ErrorIs(t, err, ErrNotEditable)

	updated, err := s.UpdateLessonComment(ctx, author, c.ID, "edited text")
	require.NoError(t, err)
	assert.Equal(t, "edited text", updated.Comment)

	s.now = func() time.Time { return time.Now().Add(31 * time.Minute) }
	_, err = s.UpdateLessonComment(ctx, author, c.ID, "too late")
	assert.ErrorIs(t, err, ErrEditExpired)

	list, err := s.ListLessonComments(ctx, lesson.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "edited text", list[0].Comment)
	require.NotNil(t, list[0].User)
	assert.Equal(t, "author@example.com", list[0].User.Email)

	assert.ErrorIs(t, s.DeleteLessonComment(ctx, other, c.ID), ErrNotDeletable)
	require.NoError(t, s.DeleteLessonComment(ctx, admin, c.ID))
	assert.ErrorIs(t, s.DeleteLessonComment(ctx, admin, c.ID), ErrCommentNotFound)
}

func TestCourseCommentLifecycle(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	s := NewService(db)
	author := auth.ActorFor(testutil.SeedUser(t, db, "author@example.com", models.RoleStudent))
	course := testutil.SeedCourse(t, db, "go-basics", 0, true)

	_, err := s.AddCourseComment(ctx, author, course.ID, "no")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	c, err := s.AddCourseComment(ctx, author, course.ID, "Loved this course")
	require.NoError(t, err)

	_, err = s.UpdateCourseComment(ctx, author, c.ID, "   ")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	updated, err := s.UpdateCourseComment(ctx, author, c.ID, "Loved it a lot")
	require.NoError(t, err)
	assert.Equal(t, "Loved it a lot", updated.Content)

	list, err := s.ListCourseComments(ctx, course.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteCourseComment(ctx, author, c.ID))
	list, err = s.ListCourseComments(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
