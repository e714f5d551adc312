package models

import "time"

type CourseComment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CourseContentComment struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	CourseContentID uint           `json:"course_content_id" gorm:"index;not null"`
	Comment         string         `json:"comment" gorm:"type:text;not null"`
	User            *User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CourseContent   *CourseContent `json:"-" gorm:"foreignKey:CourseContentID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
