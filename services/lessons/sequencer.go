// Package lessons keeps the lessons of each course in a strict, gap-tolerant
// order and answers playback navigation queries.
package lessons

import (
	"context"
	"errors"
	"fmt"

	"barmaja/apperr"
	"barmaja/database"
	"barmaja/models"

	"gorm.io/gorm"
)

// LessonInput is a validated lesson write.
type LessonInput struct {
	TitleEn   string
	TitleAr   string
	ContentEn string
	ContentAr string
	VideoURL  *string
	SortOrder int
	IsActive  bool
}

// Assignment moves one lesson to a new sort order.
type Assignment struct {
	LessonID  uint `json:"id"`
	SortOrder int  `json:"sort_order"`
}

// Playback is a lesson together with its active peers for navigation.
// Previous and Next are nil at either end of the list.
type Playback struct {
	Current  *models.CourseContent  `json:"content"`
	Lessons  []models.CourseContent `json:"all_lessons"`
	Previous *models.CourseContent  `json:"previous"`
	Next     *models.CourseContent  `json:"next"`
}

type Progress struct {
	CompletedLessons int     `json:"completed_lessons"`
	TotalLessons     int     `json:"total_lessons"`
	Percentage       float64 `json:"percentage"`
}

// CompletionCounter reports how many lessons of a course a user finished.
type CompletionCounter interface {
	CompletedLessons(ctx context.Context, userID, courseID uint) (int, error)
}

// NoCompletions is the CompletionCounter used until completion is tracked.
type NoCompletions struct{}

func (NoCompletions) CompletedLessons(context.Context, uint, uint) (int, error) {
	return 0, nil
}

type Sequencer struct {
	db          *gorm.DB
	completions CompletionCounter
}

func NewSequencer(db *gorm.DB, completions CompletionCounter) *Sequencer {
	if completions == nil {
		completions = NoCompletions{}
	}
	return &Sequencer{db: db, completions: completions}
}

var (
	ErrLessonNotFound = apperr.NotFound("Lesson")
	ErrCourseNotFound = apperr.NotFound("Course")
)

const orderMinMessage = "Lesson order must be at least 1"

func checkOrder(order int) error {
	if order < 1 {
		return apperr.FieldError("sort_order", orderMinMessage)
	}
	return nil
}

// lockCourse loads the course row, locking it where the database allows, so
// order writes for one course are serialized.
func lockCourse(tx *gorm.DB, courseID uint) error {
	var course models.Course
	err := database.ForUpdate(tx).Select("id").First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCourseNotFound
	}
	return err
}

func findLesson(tx *gorm.DB, courseID, lessonID uint) (*models.CourseContent, error) {
	var lesson models.CourseContent
	err := tx.Where("course_id = ?", courseID).First(&lesson, lessonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func orderTaken(tx *gorm.DB, courseID uint, order int, excludeID uint) (bool, error) {
	q := tx.Model(&models.CourseContent{}).Where("course_id = ? AND sort_order = ?", courseID, order)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateLesson adds a lesson at in.SortOrder. It fails with a duplicate order
// error if another lesson of the course already holds that order.
func (s *Sequencer) CreateLesson(ctx context.Context, courseID uint, in LessonInput) (*models.CourseContent, error) {
	if err := checkOrder(in.SortOrder); err != nil {
		return nil, err
	}

	lesson := &models.CourseContent{
		CourseID:  courseID,
		TitleEn:   in.TitleEn,
		TitleAr:   in.TitleAr,
		ContentEn: in.ContentEn,
		ContentAr: in.ContentAr,
		VideoURL:  in.VideoURL,
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCourse(tx, courseID); err != nil {
			return err
		}
		taken, err := orderTaken(tx, courseID, in.SortOrder, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperr.DuplicateOrder(in.SortOrder)
		}
		return tx.Create(lesson).Error
	})
	if database.IsUniqueViolation(err) {
		return nil, apperr.DuplicateOrder(in.SortOrder)
	}
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// UpdateLesson rewrites a lesson. The lesson's own row never collides with itself.
func (s *Sequencer) UpdateLesson(ctx context.Context, courseID, lessonID uint, in LessonInput) (*models.CourseContent, error) {
	if err := checkOrder(in.SortOrder); err != nil {
		return nil, err
	}

	var lesson *models.CourseContent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCourse(tx, courseID); err != nil {
			return err
		}
		var err error
		lesson, err = findLesson(tx, courseID, lessonID)
		if err != nil {
			return err
		}
		taken, err := orderTaken(tx, courseID, in.SortOrder, lesson.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.DuplicateOrder(in.SortOrder)
		}

		lesson.TitleEn = in.TitleEn
		lesson.TitleAr = in.TitleAr
		lesson.ContentEn = in.ContentEn
		lesson.ContentAr = in.ContentAr
		lesson.VideoURL = in.VideoURL
		lesson.SortOrder = in.SortOrder
		lesson.IsActive = in.IsActive
		return tx.Save(lesson).Error
	})
	if database.IsUniqueViolation(err) {
		return nil, apperr.DuplicateOrder(in.SortOrder)
	}
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// Reorder applies every assignment or none. The resulting orders of the whole
// course must be pairwise distinct. Rows are first parked on negative orders
// so the unique index holds between the two passes.
func (s *Sequencer) Reorder(ctx context.Context, courseID uint, assignments []Assignment) error {
	if len(assignments) == 0 {
		return apperr.FieldError("content_orders", "At least one lesson order is required")
	}
	fields := map[string]string{}
	seen := make(map[uint]bool, len(assignments))
	for i, a := range assignments {
		if a.LessonID == 0 {
			fields[fmt.Sprintf("content_orders.%d.id", i)] = "Lesson id is required"
		} else if seen[a.LessonID] {
			fields[fmt.Sprintf("content_orders.%d.id", i)] = "Lesson is listed more than once"
		}
		seen[a.LessonID] = true
		if a.SortOrder < 1 {
			fields[fmt.Sprintf("content_orders.%d.sort_order", i)] = orderMinMessage
		}
	}
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCourse(tx, courseID); err != nil {
			return err
		}

		var current []models.CourseContent
		if err := tx.Select("id", "sort_order").Where("course_id = ?", courseID).Find(&current).Error; err != nil {
			return err
		}
		final := make(map[uint]int, len(current))
		for _, l := range current {
			final[l.ID] = l.SortOrder
		}

		for i, a := range assignments {
			if _, ok := final[a.LessonID]; !ok {
				fields[fmt.Sprintf("content_orders.%d.id", i)] = "Lesson does not belong to this course"
				continue
			}
			final[a.LessonID] = a.SortOrder
		}
		if len(fields) > 0 {
			return apperr.Validation(fields)
		}

		holder := make(map[int]uint, len(final))
		for _, l := range current {
			order := final[l.ID]
			if _, dup := holder[order]; dup {
				return apperr.DuplicateOrder(order)
			}
			holder[order] = l.ID
		}

		for _, a := range assignments {
			if err := tx.Model(&models.CourseContent{}).Where("id = ?", a.LessonID).
				Update("sort_order", -int(a.LessonID)).Error; err != nil {
				return err
			}
		}
		for _, a := range assignments {
			if err := tx.Model(&models.CourseContent{}).Where("id = ?", a.LessonID).
				Update("sort_order", a.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Sequencer) list(ctx context.Context, courseID uint, activeOnly bool) ([]models.CourseContent, error) {
	q := s.db.WithContext(ctx).Where("course_id = ?", courseID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var lessons []models.CourseContent
	if err := q.Order("sort_order ASC").Order("id ASC").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// ListActive returns the active lessons ascending by sort order, then id.
func (s *Sequencer) ListActive(ctx context.Context, courseID uint) ([]models.CourseContent, error) {
	return s.list(ctx, courseID, true)
}

// ListAll includes inactive lessons.
func (s *Sequencer) ListAll(ctx context.Context, courseID uint) ([]models.CourseContent, error) {
	return s.list(ctx, courseID, false)
}

// ResolveCurrent returns the requested lesson, or the first active one when
// lessonID is nil, with its neighbours in the active list.
func (s *Sequencer) ResolveCurrent(ctx context.Context, courseID uint, lessonID *uint) (*Playback, error) {
	active, err := s.ListActive(ctx, courseID)
	if err != nil {
		return nil, err
	}

	playback := &Playback{Lessons: active}
	if lessonID == nil {
		if len(active) == 0 {
			return nil, ErrLessonNotFound
		}
		playback.Current = &active[0]
	} else {
		playback.Current, err = findLesson(s.db.WithContext(ctx), courseID, *lessonID)
		if err != nil {
			return nil, err
		}
	}

	for i := range active {
		if active[i].ID != playback.Current.ID {
			continue
		}
		if i > 0 {
			playback.Previous = &active[i-1]
		}
		if i+1 < len(active) {
			playback.Next = &active[i+1]
		}
		break
	}
	return playback, nil
}

// ComputeProgress is completed/total as a percentage, 0 for an empty course.
func ComputeProgress(total, completed int) Progress {
	p := Progress{CompletedLessons: completed, TotalLessons: total}
	if total > 0 {
		p.Percentage = float64(completed) / float64(total) * 100
	}
	return p
}

// ProgressFor computes a user's progress over total active lessons.
func (s *Sequencer) ProgressFor(ctx context.Context, userID, courseID uint, total int) (Progress, error) {
	completed, err := s.completions.CompletedLessons(ctx, userID, courseID)
	if err != nil {
		return Progress{}, err
	}
	return ComputeProgress(total, completed), nil
}

// ToggleActive flips is_active and leaves the order alone.
func (s *Sequencer) ToggleActive(ctx context.Context, courseID, lessonID uint) (*models.CourseContent, error) {
	var lesson *models.CourseContent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		lesson, err = findLesson(tx, courseID, lessonID)
		if err != nil {
			return err
		}
		lesson.IsActive = !lesson.IsActive
		return tx.Model(lesson).Update("is_active", lesson.IsActive).Error
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *Sequencer) GetLesson(ctx context.Context, courseID, lessonID uint) (*models.CourseContent, error) {
	return findLesson(s.db.WithContext(ctx), courseID, lessonID)
}

func (s *Sequencer) DeleteLesson(ctx context.Context, courseID, lessonID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := findLesson(tx, courseID, lessonID)
		if err != nil {
			return err
		}
		if err := tx.Where("course_content_id = ?", lesson.ID).Delete(&models.CourseContentComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(lesson).Error
	})
}
