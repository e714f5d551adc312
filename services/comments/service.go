// Package comments stores student comments on courses and lessons.
package comments

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"barmaja/apperr"
	"barmaja/auth"
	"barmaja/logging"
	"barmaja/models"

	"gorm.io/gorm"
)

// EditWindow is how long after posting a comment may still be edited.
const EditWindow = 30 * time.Minute

const (
	minLength = 3
	maxLength = 1000
)

var (
	ErrCommentNotFound = apperr.NotFound("Comment")
	ErrCourseNotFound  = apperr.NotFound("Course")
	ErrLessonNotFound  = apperr.NotFound("Lesson")
	ErrLoginRequired   = &apperr.Error{Kind: apperr.KindUnauthenticated, Message: "Please login to add comments."}
	ErrNotEditable     = apperr.Forbidden("You can only edit your own comments.")
	ErrNotDeletable    = apperr.Forbidden("You can only delete your own comments.")
	ErrEditExpired     = apperr.Forbidden("Comments can only be edited within 30 minutes of posting.")
)

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// normalize trims text and checks its length. field names the request field.
func normalize(field, text string) (string, error) {
	text = strings.TrimSpace(text)
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		return "", apperr.FieldError(field, "Comment cannot be blank.")
	case n < minLength:
		return "", apperr.FieldError(field, "Comment must be at least 3 characters long.")
	case n > maxLength:
		return "", apperr.FieldError(field, "Comment cannot exceed 1000 characters.")
	}
	return text, nil
}

// CanEdit applies the edit rules: author or admin, within EditWindow.
func CanEdit(actor auth.Actor, ownerID uint, createdAt, now time.Time) error {
	if !actor.CanModify(ownerID) {
		return ErrNotEditable
	}
	if now.Sub(createdAt) > EditWindow {
		return ErrEditExpired
	}
	return nil
}

// CanDelete allows the author or an admin at any time.
func CanDelete(actor auth.Actor, ownerID uint) error {
	if !actor.CanModify(ownerID) {
		return ErrNotDeletable
	}
	return nil
}

func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	err := tx.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *Service) AddCourseComment(ctx context.Context, actor auth.Actor, courseID uint, text string) (*models.CourseComment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	text, err := normalize("content", text)
	if err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)
	ok, err := exists(db, &models.Course{}, courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCourseNotFound
	}

	comment := &models.CourseComment{UserID: actor.UserID, CourseID: courseID, Content: text}
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) findCourseComment(ctx context.Context, id uint) (*models.CourseComment, error) {
	var comment models.CourseComment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	return &comment, err
}

func (s *Service) UpdateCourseComment(ctx context.Context, actor auth.Actor, id uint, text string) (*models.CourseComment, error) {
	comment, err := s.findCourseComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanEdit(actor, comment.UserID, comment.CreatedAt, s.now()); err != nil {
		return nil, err
	}
	text, err = normalize("content", text)
	if err != nil {
		return nil, err
	}
	comment.Content = text
	if err := s.db.WithContext(ctx).Model(comment).Update("content", text).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) DeleteCourseComment(ctx context.Context, actor auth.Actor, id uint) error {
	comment, err := s.findCourseComment(ctx, id)
	if err != nil {
		return err
	}
	if err := CanDelete(actor, comment.UserID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(comment).Error; err != nil {
		return err
	}
	logging.Info().Uint("comment_id", comment.ID).Uint("deleted_by", actor.UserID).Msg("Course comment deleted")
	return nil
}

// ListCourseComments returns a course's comments with authors, newest first.
func (s *Service) ListCourseComments(ctx context.Context, courseID uint) ([]models.CourseComment, error) {
	var comments []models.CourseComment
	err := s.db.WithContext(ctx).Preload("User").Where("course_id = ?", courseID).
		Order("created_at DESC").Order("id DESC").Find(&comments).Error
	return comments, err
}

func (s *Service) AddLessonComment(ctx context.Context, actor auth.Actor, lessonID uint, text string) (*models.CourseContentComment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	text, err := normalize("comment", text)
	if err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)
	ok, err := exists(db, &models.CourseContent{}, lessonID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLessonNotFound
	}

	comment := &models.CourseContentComment{UserID: actor.UserID, CourseContentID: lessonID, Comment: text}
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) findLessonComment(ctx context.Context, id uint) (*models.CourseContentComment, error) {
	var comment models.CourseContentComment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	return &comment, err
}

func (s *Service) UpdateLessonComment(ctx context.Context, actor auth.Actor, id uint, text string) (*models.CourseContentComment, error) {
	comment, err := s.findLessonComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanEdit(actor, comment.UserID, comment.CreatedAt, s.now()); err != nil {
		return nil, err
	}
	text, err = normalize("comment", text)
	if err != nil {
		return nil, err
	}
	comment.Comment = text
	if err := s.db.WithContext(ctx).Model(comment).Update("comment", text).Error; err != nil {
		logging.Error().Err(err).Uint("comment_id", id).Uint("user_id", actor.UserID).Msg("Failed to update comment")
		return nil, err
	}
	return comment, nil
}

func (s *Service) DeleteLessonComment(ctx context.Context, actor auth.Actor, id uint) error {
	comment, err := s.findLessonComment(ctx, id)
	if err != nil {
		return err
	}
	if err := CanDelete(actor, comment.UserID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(comment).Error; err != nil {
		return err
	}
	logging.Info().Uint("comment_id", comment.ID).Uint("deleted_by", actor.UserID).Msg("Comment deleted")
	return nil
}

func (s *Service) ListLessonComments(ctx context.Context, lessonID uint) ([]models.CourseContentComment, error) {
	var comments []models.CourseContentComment
	err := s.db.WithContext(ctx).Preload("User").Where("course_content_id = ?", lessonID).
		Order("created_at DESC").Order("id DESC").Find(&comments).Error
	return comments, err
}
