package commentValidator

import (
	"barmaja/validators"

	"github.com/gofiber/fiber/v2"
)

// Length and blankness are checked by the comments service after trimming.

type CourseCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type LessonCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

var messages = validators.Messages{
	"content.required": "Comment is required.",
	"comment.required": "Comment is required.",
}

func CourseComment() fiber.Handler {
	return validators.Body[CourseCommentRequest]("validatedComment", messages)
}

func LessonComment() fiber.Handler {
	return validators.Body[LessonCommentRequest]("validatedComment", messages)
}
