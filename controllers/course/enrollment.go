package controllers

import (
	"barmaja/middleware"
	"barmaja/validators"
	courseValidator "barmaja/validators/course"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse charges the signed-in user for a published course.
func (h *Handler) EnrollInCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)

	enrollment, err := h.Enrollments.Enroll(c.UserContext(), middleware.CurrentActor(c), validators.ParamID(c, "id"), reqData.PaymentMethod)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully enrolled in the course!", enrollment)
}

func (h *Handler) GetEnrollmentStatus(c *fiber.Ctx) error {
	course, err := h.Courses.GetPublished(c.UserContext(), validators.ParamID(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	view, err := newCourseView(middleware.Lang(c), course)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	view.IsEnrolled, err = h.Enrollments.IsEnrolled(c.UserContext(), middleware.CurrentActor(c).UserID, course.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully!", fiber.Map{
		"course":     view,
		"isEnrolled": view.IsEnrolled,
	})
}

func (h *Handler) GetUserEnrollments(c *fiber.Ctx) error {
	list, err := h.Enrollments.ListForUser(c.UserContext(), middleware.CurrentActor(c).UserID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", list)
}
