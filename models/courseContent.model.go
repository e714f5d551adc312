package models

import "time"

// CourseContent is a single lesson. No two lessons of a course share a sort order.
type CourseContent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_course_sort_order,priority:1"`
	TitleEn   string    `json:"title_en" gorm:"size:255;not null"`
	TitleAr   string    `json:"title_ar" gorm:"size:255;not null"`
	ContentEn string    `json:"content_en" gorm:"type:text"`
	ContentAr string    `json:"content_ar" gorm:"type:text"`
	VideoURL  *string   `json:"video_url" gorm:"size:500"`
	SortOrder int       `json:"sort_order" gorm:"not null;uniqueIndex:idx_course_sort_order,priority:2"`
	IsActive  bool      `json:"is_active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
