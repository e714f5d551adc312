package dashboard

import (
	"context"
	"testing"

	"barmaja/models"
	"barmaja/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	db := testutil.DB(t)
	admin := testutil.SeedUser(t, db, "admin@example.com", models.RoleAdmin)
	student := testutil.SeedUser(t, db, "s1@example.com", models.RoleStudent)
	testutil.SeedUser(t, db, "s2@example.com", models.RoleStudent)

	published := testutil.SeedCourse(t, db, "go", 0, true)
	testutil.SeedCourse(t, db, "draft", 0, false)
	testutil.SeedLesson(t, db, published.ID, 1, true)
	testutil.SeedLesson(t, db, published.ID, 2, false)
	testutil.SeedEnrollment(t, db, student.ID, published.ID, models.EnrollmentActive)
	testutil.SeedEnrollment(t, db, admin.ID, published.ID, models.EnrollmentPending)
	require.NoError(t, db.Create(&models.BlogPost{TitleEn: "a", TitleAr: "a", Slug: "a", IsPublished: true}).Error)
	require.NoError(t, db.Create(&models.BlogPost{TitleEn: "b", TitleAr: "b", Slug: "b"}).Error)

	stats, err := NewService(db).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Stats{
		TotalCourses:       2,
		PublishedCourses:   1,
		TotalUsers:         3,
		TotalStudents:      2,
		TotalBlogPosts:     2,
		PublishedBlogPosts: 1,
		TotalLessons:       2,
		CourseEnrollments:  1,
	}, stats)
}
