package controllers

import (
	"barmaja/i18n"
	"barmaja/middleware"
	"barmaja/models"
	"barmaja/utils"
	"barmaja/validators"

	"github.com/gofiber/fiber/v2"
)

// courseView adds the localized, rendered fields the course pages show.
type courseView struct {
	*models.Course
	Title           string  `json:"title"`
	DescriptionHTML string  `json:"description_html"`
	Price           float64 `json:"price"`
	IsEnrolled      bool    `json:"is_enrolled"`
}

func newCourseView(lang string, course *models.Course) (*courseView, error) {
	description, err := utils.RenderMarkdown(i18n.Pick(lang, course.DescriptionEn, course.DescriptionAr))
	if err != nil {
		return nil, err
	}
	return &courseView{
		Course:          course,
		Title:           i18n.Pick(lang, course.TitleEn, course.TitleAr),
		DescriptionHTML: description,
		Price:           course.Price(),
	}, nil
}

// Home returns the latest published courses and posts.
func (h *Handler) Home(c *fiber.Ctx) error {
	latestCourses, err := h.Courses.Latest(c.UserContext(), homeItems)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	latestPosts, err := h.Blogs.Latest(c.UserContext(), homeItems)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home fetched successfully!", fiber.Map{
		"courses": latestCourses,
		"blogs":   latestPosts,
		"lang":    middleware.Lang(c),
		"rtl":     i18n.IsRTL(middleware.Lang(c)),
	})
}

func (h *Handler) GetAllCourses(c *fiber.Ctx) error {
	page, limit := pageParams(c, publicPageSize)
	list, pagination, err := h.Courses.ListPublished(c.UserContext(), page, limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":    list,
		"pagination": pagination,
	})
}

// GetCourseDetails shows a published course with its active lessons and
// comments. is_enrolled is false for anonymous visitors.
func (h *Handler) GetCourseDetails(c *fiber.Ctx) error {
	course, err := h.Courses.GetPublished(c.UserContext(), validators.ParamID(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	view, err := newCourseView(middleware.Lang(c), course)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if actor := middleware.CurrentActor(c); actor.IsAuthenticated() {
		view.IsEnrolled, err = h.Enrollments.IsEnrolled(c.UserContext(), actor.UserID, course.ID)
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", view)
}
