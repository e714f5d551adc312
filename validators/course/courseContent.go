package courseValidator

import (
	"barmaja/validators"

	"github.com/gofiber/fiber/v2"
)

type LessonRequest struct {
	TitleEn   string  `json:"title_en" validate:"required,max=255"`
	TitleAr   string  `json:"title_ar" validate:"required,max=255"`
	ContentEn string  `json:"content_en" validate:"required"`
	ContentAr string  `json:"content_ar" validate:"required"`
	VideoURL  *string `json:"video_url" validate:"omitempty,url,max=500"`
	SortOrder *int    `json:"sort_order" validate:"required,min=1"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"is_active"`
}

type ReorderItem struct {
	ID        uint `json:"id" validate:"required"`
	SortOrder int  `json:"sort_order" validate:"min=1"`
}

type ReorderRequest struct {
	ContentOrders []ReorderItem `json:"content_orders" validate:"required,min=1,dive"`
}

var lessonMessages = validators.Messages{
	"sort_order.required": "Lesson order is required",
	"sort_order.min":      "Lesson order must be at least 1",
}

// Lesson validates lesson create and update bodies.
func Lesson() fiber.Handler {
	return validators.Body[LessonRequest]("validatedLesson", lessonMessages)
}

func Reorder() fiber.Handler {
	return validators.Body[ReorderRequest]("validatedReorder", lessonMessages)
}
