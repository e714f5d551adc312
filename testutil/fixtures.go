package testutil

import (
	"fmt"
	"testing"

	"barmaja/models"

	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, db *gorm.DB, email, role string) *models.User {
	tb.Helper()
	u := &models.User{
		Name:              "Test User",
		Email:             email,
		Password:          "pw",
		Role:              role,
		PreferredLanguage: "en",
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCourse(tb testing.TB, db *gorm.DB, slug string, priceCents int64, published bool) *models.Course {
	tb.Helper()
	c := &models.Course{
		TitleEn:     "Course " + slug,
		TitleAr:     "دورة " + slug,
		Slug:        slug,
		PriceCents:  priceCents,
		IsPublished: published,
	}
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedLesson(tb testing.TB, db *gorm.DB, courseID uint, order int, active bool) *models.CourseContent {
	tb.Helper()
	l := &models.CourseContent{
		CourseID:  courseID,
		TitleEn:   fmt.Sprintf("Lesson %d", order),
		TitleAr:   fmt.Sprintf("الدرس %d", order),
		SortOrder: order,
		IsActive:  active,
	}
	if err := db.Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

func SeedEnrollment(tb testing.TB, db *gorm.DB, userID, courseID uint, status string) *models.Enrollment {
	tb.Helper()
	e := &models.Enrollment{UserID: userID, CourseID: courseID, Status: status}
	if err := db.Create(e).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
	return e
}
