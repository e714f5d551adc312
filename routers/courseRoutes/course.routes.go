package courseRoutes

import (
	controllers "barmaja/controllers/course"
	"barmaja/middleware"
	"barmaja/validators"
	commentValidator "barmaja/validators/comment"
	courseValidator "barmaja/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog, enrollment and comment routes
func SetupCourseRoutes(app *fiber.App, h *controllers.Handler) {
	app.Get("/home", h.Home)

	courseGroup := app.Group("/courses")

	courseGroup.Get("/", h.GetAllCourses)
	courseGroup.Get("/:id", validators.ID("id"), h.GetCourseDetails)

	// Lesson player
	courseGroup.Get("/:id/lessons", validators.ID("id"), h.GetCourseContent)
	courseGroup.Get("/:id/lessons/:content_id", validators.ID("id", "content_id"), h.GetCourseContent)

	// Enrollment
	courseGroup.Get("/:id/enroll", middleware.RequireAuth, validators.ID("id"), h.GetEnrollmentStatus)
	courseGroup.Post("/:id/enroll", middleware.RequireAuth, validators.ID("id"), courseValidator.Enroll(), h.EnrollInCourse)

	// Course comments
	courseGroup.Post("/:id/comments", middleware.RequireAuth, validators.ID("id"), commentValidator.CourseComment(), h.AddCourseComment)
	commentGroup := app.Group("/comments", middleware.RequireAuth)
	commentGroup.Put("/:comment_id", validators.ID("comment_id"), commentValidator.CourseComment(), h.UpdateCourseComment)
	commentGroup.Delete("/:comment_id", validators.ID("comment_id"), h.DeleteCourseComment)

	// Lesson comments
	lessonGroup := app.Group("/lessons")
	lessonGroup.Get("/:content_id/comments", validators.ID("content_id"), h.GetLessonComments)
	lessonGroup.Post("/:content_id/comments", middleware.RequireAuth, validators.ID("content_id"), commentValidator.LessonComment(), h.AddLessonComment)
	lessonCommentGroup := app.Group("/lesson-comments", middleware.RequireAuth)
	lessonCommentGroup.Put("/:comment_id", validators.ID("comment_id"), commentValidator.LessonComment(), h.UpdateLessonComment)
	lessonCommentGroup.Delete("/:comment_id", validators.ID("comment_id"), h.DeleteLessonComment)

	userGroup := app.Group("/user", middleware.RequireAuth)
	userGroup.Get("/enrollments", h.GetUserEnrollments)
}
