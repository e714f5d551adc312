// Package dashboard computes admin statistics.
package dashboard

import (
	"context"

	"barmaja/models"

	"gorm.io/gorm"
)

type Stats struct {
	TotalCourses       int64 `json:"total_courses"`
	PublishedCourses   int64 `json:"published_courses"`
	TotalUsers         int64 `json:"total_users"`
	TotalStudents      int64 `json:"total_students"`
	TotalBlogPosts     int64 `json:"total_blog_posts"`
	PublishedBlogPosts int64 `json:"published_blog_posts"`
	TotalLessons       int64 `json:"total_lessons"`
	CourseEnrollments  int64 `json:"course_enrollments"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	db := s.db.WithContext(ctx)
	stats := &Stats{}

	counts := []struct {
		model interface{}
		where []interface{}
		dest  *int64
	}{
		{&models.Course{}, nil, &stats.TotalCourses},
		{&models.Course{}, []interface{}{"is_published = ?", true}, &stats.PublishedCourses},
		{&models.User{}, nil, &stats.TotalUsers},
		{&models.User{}, []interface{}{"role <> ?", models.RoleAdmin}, &stats.TotalStudents},
		{&models.BlogPost{}, nil, &stats.TotalBlogPosts},
		{&models.BlogPost{}, []interface{}{"is_published = ?", true}, &stats.PublishedBlogPosts},
		{&models.CourseContent{}, nil, &stats.TotalLessons},
		{&models.Enrollment{}, []interface{}{"status = ?", models.EnrollmentActive}, &stats.CourseEnrollments},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if len(c.where) > 0 {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
