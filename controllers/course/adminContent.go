package controllers

import (
	"barmaja/middleware"
	"barmaja/services/lessons"
	"barmaja/validators"
	courseValidator "barmaja/validators/course"

	"github.com/gofiber/fiber/v2"
)

func lessonInput(reqData *courseValidator.LessonRequest) lessons.LessonInput {
	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}
	return lessons.LessonInput{
		TitleEn:   reqData.TitleEn,
		TitleAr:   reqData.TitleAr,
		ContentEn: reqData.ContentEn,
		ContentAr: reqData.ContentAr,
		VideoURL:  reqData.VideoURL,
		SortOrder: *reqData.SortOrder,
		IsActive:  isActive,
	}
}

// AdminListContent lists every lesson of a course in playback order.
func (h *Handler) AdminListContent(c *fiber.Ctx) error {
	courseID := validators.ParamID(c, "id")
	if _, err := h.Courses.Get(c.UserContext(), courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	list, err := h.Lessons.ListAll(c.UserContext(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", list)
}

func (h *Handler) AdminGetContent(c *fiber.Ctx) error {
	lesson, err := h.Lessons.GetLesson(c.UserContext(), validators.ParamID(c, "id"), validators.ParamID(c, "content_id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

func (h *Handler) AdminCreateContent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLesson").(*courseValidator.LessonRequest)

	lesson, err := h.Lessons.CreateLesson(c.UserContext(), validators.ParamID(c, "id"), lessonInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func (h *Handler) AdminUpdateContent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLesson").(*courseValidator.LessonRequest)

	lesson, err := h.Lessons.UpdateLesson(c.UserContext(), validators.ParamID(c, "id"), validators.ParamID(c, "content_id"), lessonInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func (h *Handler) AdminDeleteContent(c *fiber.Ctx) error {
	if err := h.Lessons.DeleteLesson(c.UserContext(), validators.ParamID(c, "id"), validators.ParamID(c, "content_id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

func (h *Handler) AdminToggleContent(c *fiber.Ctx) error {
	lesson, err := h.Lessons.ToggleActive(c.UserContext(), validators.ParamID(c, "id"), validators.ParamID(c, "content_id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson status updated successfully!", lesson)
}

// AdminReorderContent applies a batch of sort order changes atomically.
func (h *Handler) AdminReorderContent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)

	assignments := make([]lessons.Assignment, len(reqData.ContentOrders))
	for i, item := range reqData.ContentOrders {
		assignments[i] = lessons.Assignment{LessonID: item.ID, SortOrder: item.SortOrder}
	}

	courseID := validators.ParamID(c, "id")
	if err := h.Lessons.Reorder(c.UserContext(), courseID, assignments); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	list, err := h.Lessons.ListAll(c.UserContext(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", list)
}
