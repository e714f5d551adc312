package courseValidator

import (
	"barmaja/validators"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	TitleEn         string   `json:"title_en" validate:"required,max=255"`
	TitleAr         string   `json:"title_ar" validate:"required,max=255"`
	DescriptionEn   string   `json:"description_en" validate:"required,min=10"`
	DescriptionAr   string   `json:"description_ar" validate:"required,min=10"`
	Price           *float64 `json:"price" validate:"required,gte=0,lte=999999.99"`
	PreviewVideoURL *string  `json:"preview_video_url" validate:"omitempty,url,max=500"`
	IsPublished     bool     `json:"is_published"`
}

type EnrollRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=255"`
}

// Course validates course create and update bodies.
func Course() fiber.Handler {
	return validators.Body[CourseRequest]("validatedCourse", nil)
}

func Enroll() fiber.Handler {
	return validators.Body[EnrollRequest]("validatedEnroll", nil)
}
