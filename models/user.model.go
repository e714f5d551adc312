package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"default:''"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	Password          string    `json:"-" gorm:"not null"`
	Role              string    `json:"role" gorm:"default:'student'"` // admin, student
	PreferredLanguage string    `json:"preferred_language" gorm:"default:'en'"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
