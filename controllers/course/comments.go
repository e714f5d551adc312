package controllers

import (
	"barmaja/middleware"
	"barmaja/validators"
	commentValidator "barmaja/validators/comment"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) AddCourseComment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedComment").(*commentValidator.CourseCommentRequest)

	comment, err := h.Comments.AddCourseComment(c.UserContext(), middleware.CurrentActor(c), validators.ParamID(c, "id"), reqData.Content)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment added successfully!", comment)
}

func (h *Handler) UpdateCourseComment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedComment").(*commentValidator.CourseCommentRequest)

	comment, err := h.Comments.UpdateCourseComment(c.UserContext(), middleware.CurrentActor(c), validators.ParamID(c, "comment_id"), reqData.Content)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated successfully!", comment)
}

func (h *Handler) DeleteCourseComment(c *fiber.Ctx) error {
	if err := h.Comments.DeleteCourseComment(c.UserContext(), middleware.CurrentActor(c), validators.ParamID(c, "comment_id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}

func (h *Handler) GetLessonComments(c *fiber.Ctx) error {
	list, err := h.Comments.ListLessonComments(c.UserContext(), validators.ParamID(c, "content_id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", list)
}

func (h *Handler) AddLessonComment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedComment").(*commentValidator.LessonCommentRequest)

	comment, err := h.Comments.AddLessonComment(c.UserContext(), middleware.CurrentActor(c), validators.ParamID(c, "content_id"), reqData.Comment)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment added successfully!", comment)
}

func (h *Handler) UpdateLessonComment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedComment").(*commentValidator.LessonCommentRequest)

	comment, err := h.Comments.UpdateLessonComment(c.UserContext(), middleware.CurrentActor(c), validators.ParamID(c, "comment_id"), reqData.Comment)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated successfully!", comment)
}

func (h *Handler) DeleteLessonComment(c *fiber.Ctx) error {
	if err := h.Comments.DeleteLessonComment(c.UserContext(), middleware.CurrentActor(c), validators.ParamID(c, "comment_id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}
