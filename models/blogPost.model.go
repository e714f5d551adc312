package models

import "time"

type BlogPost struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	AuthorID    *uint      `json:"author_id" gorm:"index"`
	Author      *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	TitleEn     string     `json:"title_en" gorm:"size:255;not null"`
	TitleAr     string     `json:"title_ar" gorm:"size:255;not null"`
	Slug        string     `json:"slug" gorm:"size:300;uniqueIndex;not null"`
	ContentEn   string     `json:"content_en" gorm:"type:text"`
	ContentAr   string     `json:"content_ar" gorm:"type:text"`
	IsPublished bool       `json:"is_published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
