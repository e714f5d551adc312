package controllers

import (
	"barmaja/i18n"
	"barmaja/middleware"
	"barmaja/services/lessons"
	"barmaja/utils"
	"barmaja/validators"

	"github.com/gofiber/fiber/v2"
)

// GetCourseContent serves the lesson player. Without a content_id it opens
// the first active lesson. Progress is included for signed-in users only.
func (h *Handler) GetCourseContent(c *fiber.Ctx) error {
	ctx := c.UserContext()
	lang := middleware.Lang(c)

	course, err := h.Courses.GetPublished(ctx, validators.ParamID(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var lessonID *uint
	if id := validators.ParamID(c, "content_id"); id != 0 {
		lessonID = &id
	}

	playback, err := h.Lessons.ResolveCurrent(ctx, course.ID, lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	contentHTML, err := utils.RenderMarkdown(i18n.Pick(lang, playback.Current.ContentEn, playback.Current.ContentAr))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var progress *lessons.Progress
	if actor := middleware.CurrentActor(c); actor.IsAuthenticated() {
		p, err := h.Lessons.ProgressFor(ctx, actor.UserID, course.ID, len(playback.Lessons))
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}
		progress = &p
	}

	comments, err := h.Comments.ListLessonComments(ctx, playback.Current.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"course":       fiber.Map{"id": course.ID, "slug": course.Slug, "title": i18n.Pick(lang, course.TitleEn, course.TitleAr)},
		"content":      playback.Current,
		"content_html": contentHTML,
		"all_lessons":  playback.Lessons,
		"previous":     playback.Previous,
		"next":         playback.Next,
		"progress":     progress,
		"comments":     comments,
	})
}
