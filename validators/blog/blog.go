package blogValidator

import (
	"barmaja/validators"

	"github.com/gofiber/fiber/v2"
)

type PostRequest struct {
	TitleEn     string `json:"title_en" validate:"required,max=255"`
	TitleAr     string `json:"title_ar" validate:"required,max=255"`
	ContentEn   string `json:"content_en" validate:"required,min=50"`
	ContentAr   string `json:"content_ar" validate:"required,min=50"`
	IsPublished bool   `json:"is_published"`
}

func Post() fiber.Handler {
	return validators.Body[PostRequest]("validatedPost", nil)
}
