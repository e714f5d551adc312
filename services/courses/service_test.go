package courses

import (
	"context"
	"testing"

	"barmaja/models"
	"barmaja/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseInput(title string) CourseInput {
	return CourseInput{
		TitleEn:       title,
		TitleAr:       "دورة",
		DescriptionEn: "A practical introduction.",
		DescriptionAr: "مقدمة عملية للموضوع.",
		PriceCents:    1999,
		IsPublished:   true,
	}
}

func TestCreateAssignsUniqueSlugs(t *testing.T) {
	s := NewService(testutil.DB(t))
	ctx := context.Background()

	first, err := s.Create(ctx, 0, courseInput("Go Basics"))
	require.NoError(t, err)
	second, err := s.Create(ctx, 0, courseInput("Go Basics!"))
	require.NoError(t, err)

	assert.Equal(t, "go-basics", first.Slug)
	assert.Equal(t, "go-basics-1", second.Slug)
	assert.Nil(t, first.AuthorID)
}

func TestUpdateKeepsSlugWhenTitleUnchanged(t *testing.T) {
	s := NewService(testutil.DB(t))
	ctx := context.Background()

	course, err := s.Create(ctx, 0, courseInput("Go Basics"))
	require.NoError(t, err)

	in := courseInput("Go Basics")
	in.DescriptionEn = "Rewritten description."
	in.PriceCents = 0
	in.IsPublished = false
	updated, err := s.Update(ctx, course.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "go-basics", updated.Slug)

	stored, err := s.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rewritten description.", stored.DescriptionEn)
	assert.Equal(t, int64(0), stored.PriceCents)
	assert.False(t, stored.IsPublished)
}

func TestUpdateReslugsOnTitleChange(t *testing.T) {
	s := NewService(testutil.DB(t))
	ctx := context.Background()

	_, err := s.Create(ctx, 0, courseInput("Advanced Go"))
	require.NoError(t, err)
	course, err := s.Create(ctx, 0, courseInput("Go Basics"))
	require.NoError(t, err)

	updated, err := s.Update(ctx, course.ID, courseInput("Advanced Go"))
	require.NoError(t, err)
	assert.Equal(t, "advanced-go-1", updated.Slug)

	// renaming back reclaims its own former base without colliding with itself
	updated, err = s.Update(ctx, course.ID, courseInput("Go Basics"))
	require.NoError(t, err)
	assert.Equal(t, "go-basics", updated.Slug)
}

func TestListPublishedAndLatest(t *testing.T) {
	db := testutil.DB(t)
	s := NewService(db)
	ctx := context.Background()
	for i, slug := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		testutil.SeedCourse(t, db, slug, 0, i != 3)
	}

	page1, p, err := s.ListPublished(ctx, 1, 6)
	require.NoError(t, err)
	assert.Len(t, page1, 6)
	assert.Equal(t, int64(6), p.Total)
	assert.Equal(t, 1, p.LastPage)

	all, p, err := s.List(ctx, 2, 5)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(7), p.Total)
	assert.Equal(t, 2, p.LastPage)

	latest, err := s.Latest(ctx, 3)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, "g", latest[0].Slug)
}

func TestGetPublished(t *testing.T) {
	db := testutil.DB(t)
	s := NewService(db)
	ctx := context.Background()
	course := testutil.SeedCourse(t, db, "go", 0, true)
	draft := testutil.SeedCourse(t, db, "draft", 0, false)
	testutil.SeedLesson(t, db, course.ID, 2, true)
	testutil.SeedLesson(t, db, course.ID, 1, true)
	testutil.SeedLesson(t, db, course.ID, 3, false)

	got, err := s.GetPublished(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, got.Contents, 2)
	assert.Equal(t, 1, got.Contents[0].SortOrder)

	_, err = s.GetPublished(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	withAll, err := s.GetWithLessons(ctx, course.ID)
	require.NoError(t, err)
	assert.Len(t, withAll.Contents, 3)
}

func TestDeleteCascades(t *testing.T) {
	db := testutil.DB(t)
	s := NewService(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "s@example.com", models.RoleStudent)
	course := testutil.SeedCourse(t, db, "go", 0, true)
	lesson := testutil.SeedLesson(t, db, course.ID, 1, true)
	testutil.SeedEnrollment(t, db, user.ID, course.ID, models.EnrollmentActive)
	require.NoError(t, db.Create(&models.CourseContentComment{UserID: user.ID, CourseContentID: lesson.ID, Comment: "nice"}).Error)
	require.NoError(t, db.Create(&models.CourseComment{UserID: user.ID, CourseID: course.ID, Content: "great"}).Error)

	require.NoError(t, s.Delete(ctx, course.ID))

	for _, model := range []interface{}{&models.Course{}, &models.CourseContent{}, &models.Enrollment{}, &models.CourseComment{}, &models.CourseContentComment{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T", model)
	}
	assert.ErrorIs(t, s.Delete(ctx, course.ID), ErrCourseNotFound)
}
