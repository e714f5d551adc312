package models

import "time"

// Course is a purchasable set of ordered lessons. Slug is unique across all courses.
type Course struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	TitleEn         string          `json:"title_en" gorm:"size:255;not null"`
	TitleAr         string          `json:"title_ar" gorm:"size:255;not null"`
	Slug            string          `json:"slug" gorm:"size:300;uniqueIndex;not null"`
	DescriptionEn   string          `json:"description_en" gorm:"type:text"`
	DescriptionAr   string          `json:"description_ar" gorm:"type:text"`
	PriceCents      int64           `json:"price_cents" gorm:"default:0"`
	PreviewVideoURL *string         `json:"preview_video_url"`
	IsPublished     bool            `json:"is_published" gorm:"default:false"`
	AuthorID        *uint           `json:"author_id" gorm:"index"`
	Contents        []CourseContent `json:"contents,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Comments        []CourseComment `json:"comments,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Price returns the price in major currency units.
func (c Course) Price() float64 {
	return float64(c.PriceCents) / 100
}
