package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EnrollmentPending  = "pending"
	EnrollmentActive   = "active"
	EnrollmentRefunded = "refunded"
)

// Enrollment is the user/course pivot. One row per pair; a pending row claims
// the pair while the charge is in flight.
type Enrollment struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course,priority:1"`
	CourseID        uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course,priority:2;index"`
	Status          string         `json:"status" gorm:"size:20;default:'pending';index"`
	EnrolledAt      *time.Time     `json:"enrolled_at"`
	PaymentMethod   string         `json:"payment_method" gorm:"size:50"`
	AmountPaidCents int64          `json:"amount_paid_cents" gorm:"default:0"`
	Currency        string         `json:"currency" gorm:"size:10"`
	TransactionID   string         `json:"transaction_id" gorm:"size:255"`
	PaymentDetails  datatypes.JSON `json:"payment_details,omitempty"`
	User            *User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course          *Course        `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
