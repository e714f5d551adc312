// Package blogs manages bilingual blog posts.
package blogs

import (
	"context"
	"errors"
	"time"

	"barmaja/apperr"
	"barmaja/database"
	"barmaja/models"
	"barmaja/services/slugs"

	"gorm.io/gorm"
)

var ErrPostNotFound = apperr.NotFound("Post")

type PostInput struct {
	TitleEn     string
	TitleAr     string
	ContentEn   string
	ContentAr   string
	IsPublished bool
}

type Service struct {
	db    *gorm.DB
	slugs *slugs.Writer
	now   func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, slugs: slugs.NewWriter(db, "post", "blog_posts"), now: time.Now}
}

func (s *Service) Create(ctx context.Context, authorID uint, in PostInput) (*models.BlogPost, error) {
	post := &models.BlogPost{
		TitleEn:     in.TitleEn,
		TitleAr:     in.TitleAr,
		ContentEn:   in.ContentEn,
		ContentAr:   in.ContentAr,
		IsPublished: in.IsPublished,
	}
	if authorID != 0 {
		post.AuthorID = &authorID
	}
	if in.IsPublished {
		now := s.now()
		post.PublishedAt = &now
	}

	_, err := s.slugs.Write(ctx, in.TitleEn, 0, func(tx *gorm.DB, slug string) error {
		post.ID = 0
		post.Slug = slug
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Update rewrites a post. published_at is stamped on first publish, cleared
// on unpublish and kept while the post stays published.
func (s *Service) Update(ctx context.Context, id uint, in PostInput) (*models.BlogPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	titleChanged := post.TitleEn != in.TitleEn

	switch {
	case !post.IsPublished && in.IsPublished:
		now := s.now()
		post.PublishedAt = &now
	case post.IsPublished && !in.IsPublished:
		post.PublishedAt = nil
	}
	post.TitleEn = in.TitleEn
	post.TitleAr = in.TitleAr
	post.ContentEn = in.ContentEn
	post.ContentAr = in.ContentAr
	post.IsPublished = in.IsPublished
	post.Author = nil

	if !titleChanged {
		if err := s.db.WithContext(ctx).Save(post).Error; err != nil {
			return nil, err
		}
		return post, nil
	}
	_, err = s.slugs.Write(ctx, in.TitleEn, post.ID, func(tx *gorm.DB, slug string) error {
		post.Slug = slug
		return tx.Save(post).Error
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.db.WithContext(ctx).Preload("Author").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublishedBySlug is the public lookup; drafts are not found.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.db.WithContext(ctx).Preload("Author").
		Where("slug = ? AND is_published = ?", slug, true).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Service) List(ctx context.Context, page, limit int) ([]models.BlogPost, database.Pagination, error) {
	var posts []models.BlogPost
	q := s.db.WithContext(ctx).Model(&models.BlogPost{}).Order("created_at DESC").Order("id DESC")
	p, err := database.Paginate(q, page, limit, &posts, "Author")
	return posts, p, err
}

// ListPublished pages through published posts, most recently published first.
func (s *Service) ListPublished(ctx context.Context, page, limit int) ([]models.BlogPost, database.Pagination, error) {
	var posts []models.BlogPost
	q := s.db.WithContext(ctx).Model(&models.BlogPost{}).
		Where("is_published = ?", true).Order("published_at DESC").Order("id DESC")
	p, err := database.Paginate(q, page, limit, &posts, "Author")
	return posts, p, err
}

func (s *Service) Latest(ctx context.Context, n int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := s.db.WithContext(ctx).Preload("Author").Where("is_published = ?", true).
		Order("published_at DESC").Order("id DESC").Limit(n).Find(&posts).Error
	return posts, err
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
