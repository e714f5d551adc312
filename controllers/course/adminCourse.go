package controllers

import (
	"barmaja/middleware"
	"barmaja/services/courses"
	"barmaja/validators"
	courseValidator "barmaja/validators/course"

	"github.com/gofiber/fiber/v2"
)

func courseInput(reqData *courseValidator.CourseRequest) courses.CourseInput {
	return courses.CourseInput{
		TitleEn:         reqData.TitleEn,
		TitleAr:         reqData.TitleAr,
		DescriptionEn:   reqData.DescriptionEn,
		DescriptionAr:   reqData.DescriptionAr,
		PriceCents:      toCents(*reqData.Price),
		PreviewVideoURL: reqData.PreviewVideoURL,
		IsPublished:     reqData.IsPublished,
	}
}

func (h *Handler) AdminGetAllCourses(c *fiber.Ctx) error {
	page, limit := pageParams(c, adminPageSize)
	list, pagination, err := h.Courses.List(c.UserContext(), page, limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":    list,
		"pagination": pagination,
	})
}

// AdminGetCourseDetails returns a course with every lesson, active or not.
func (h *Handler) AdminGetCourseDetails(c *fiber.Ctx) error {
	course, err := h.Courses.GetWithLessons(c.UserContext(), validators.ParamID(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func (h *Handler) AdminCreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	actor := middleware.CurrentActor(c)

	course, err := h.Courses.Create(c.UserContext(), actor.UserID, courseInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func (h *Handler) AdminUpdateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CourseRequest)

	course, err := h.Courses.Update(c.UserContext(), validators.ParamID(c, "id"), courseInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func (h *Handler) AdminDeleteCourse(c *fiber.Ctx) error {
	if err := h.Courses.Delete(c.UserContext(), validators.ParamID(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
