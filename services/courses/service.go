// Package courses manages the course catalog.
package courses

import (
	"context"
	"errors"

	"barmaja/apperr"
	"barmaja/database"
	"barmaja/models"
	"barmaja/services/slugs"

	"gorm.io/gorm"
)

var ErrCourseNotFound = apperr.NotFound("Course")

// CourseInput is a validated course write. Prices are in cents.
type CourseInput struct {
	TitleEn         string
	TitleAr         string
	DescriptionEn   string
	DescriptionAr   string
	PriceCents      int64
	PreviewVideoURL *string
	IsPublished     bool
}

type Service struct {
	db    *gorm.DB
	slugs *slugs.Writer
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, slugs: slugs.NewWriter(db, "course", "courses")}
}

// Create stores a new course with a slug derived from its English title.
func (s *Service) Create(ctx context.Context, authorID uint, in CourseInput) (*models.Course, error) {
	course := &models.Course{}
	apply(course, in)
	if authorID != 0 {
		course.AuthorID = &authorID
	}

	_, err := s.slugs.Write(ctx, in.TitleEn, 0, func(tx *gorm.DB, slug string) error {
		course.ID = 0
		course.Slug = slug
		return tx.Create(course).Error
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// Update rewrites a course. The slug changes only when the English title does.
func (s *Service) Update(ctx context.Context, id uint, in CourseInput) (*models.Course, error) {
	course, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	titleChanged := course.TitleEn != in.TitleEn
	apply(course, in)

	if !titleChanged {
		if err := s.db.WithContext(ctx).Save(course).Error; err != nil {
			return nil, err
		}
		return course, nil
	}

	_, err = s.slugs.Write(ctx, in.TitleEn, course.ID, func(tx *gorm.DB, slug string) error {
		course.Slug = slug
		return tx.Save(course).Error
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

func apply(course *models.Course, in CourseInput) {
	course.TitleEn = in.TitleEn
	course.TitleAr = in.TitleAr
	course.DescriptionEn = in.DescriptionEn
	course.DescriptionAr = in.DescriptionAr
	course.PriceCents = in.PriceCents
	course.PreviewVideoURL = in.PreviewVideoURL
	course.IsPublished = in.IsPublished
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.WithContext(ctx).First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetWithLessons loads a course and all its lessons in order.
func (s *Service) GetWithLessons(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.WithContext(ctx).
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("id ASC")
		}).
		First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetPublished loads a published course with its active lessons and comments.
func (s *Service) GetPublished(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.WithContext(ctx).
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order ASC").Order("id ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Comments.User").
		Where("is_published = ?", true).
		First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// List pages through all courses, latest first.
func (s *Service) List(ctx context.Context, page, limit int) ([]models.Course, database.Pagination, error) {
	var courses []models.Course
	q := s.db.WithContext(ctx).Model(&models.Course{}).Order("created_at DESC").Order("id DESC")
	p, err := database.Paginate(q, page, limit, &courses)
	return courses, p, err
}

// ListPublished pages through published courses, latest first.
func (s *Service) ListPublished(ctx context.Context, page, limit int) ([]models.Course, database.Pagination, error) {
	var courses []models.Course
	q := s.db.WithContext(ctx).Model(&models.Course{}).Where("is_published = ?", true).
		Order("created_at DESC").Order("id DESC")
	p, err := database.Paginate(q, page, limit, &courses)
	return courses, p, err
}

// Latest returns up to n published courses.
func (s *Service) Latest(ctx context.Context, n int) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.WithContext(ctx).Where("is_published = ?", true).
		Order("created_at DESC").Order("id DESC").Limit(n).Find(&courses).Error
	return courses, err
}

// Delete removes the course with its lessons, comments and enrollments.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		err := tx.Select("id").First(&course, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		if err != nil {
			return err
		}

		lessonIDs := tx.Model(&models.CourseContent{}).Select("id").Where("course_id = ?", id)
		if err := tx.Where("course_content_id IN (?)", lessonIDs).Delete(&models.CourseContentComment{}).Error; err != nil {
			return err
		}
		for _, model := range []interface{}{&models.CourseContent{}, &models.CourseComment{}, &models.Enrollment{}} {
			if err := tx.Where("course_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&course).Error
	})
}
