package courseRoutes

import (
	controllers "barmaja/controllers/course"
	"barmaja/middleware"
	"barmaja/validators"
	courseValidator "barmaja/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the admin course, lesson and dashboard routes
func SetupAdminCourseRoutes(app *fiber.App, h *controllers.Handler) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)

	adminGroup.Get("/dashboard", h.AdminDashboardStats)

	// Course CRUD
	adminGroup.Get("/courses", h.AdminGetAllCourses)
	adminGroup.Post("/courses", courseValidator.Course(), h.AdminCreateCourse)
	adminGroup.Get("/courses/:id", validators.ID("id"), h.AdminGetCourseDetails)
	adminGroup.Put("/courses/:id", validators.ID("id"), courseValidator.Course(), h.AdminUpdateCourse)
	adminGroup.Delete("/courses/:id", validators.ID("id"), h.AdminDeleteCourse)

	// Lesson management
	adminGroup.Get("/courses/:id/content", validators.ID("id"), h.AdminListContent)
	adminGroup.Post("/courses/:id/content", validators.ID("id"), courseValidator.Lesson(), h.AdminCreateContent)
	adminGroup.Post("/courses/:id/content/reorder", validators.ID("id"), courseValidator.Reorder(), h.AdminReorderContent)
	adminGroup.Get("/courses/:id/content/:content_id", validators.ID("id", "content_id"), h.AdminGetContent)
	adminGroup.Put("/courses/:id/content/:content_id", validators.ID("id", "content_id"), courseValidator.Lesson(), h.AdminUpdateContent)
	adminGroup.Delete("/courses/:id/content/:content_id", validators.ID("id", "content_id"), h.AdminDeleteContent)
	adminGroup.Post("/courses/:id/content/:content_id/toggle-active", validators.ID("id", "content_id"), h.AdminToggleContent)
}
