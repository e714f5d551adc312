package blogRoutes

import (
	blogController "barmaja/controllers/blog"
	"barmaja/middleware"
	"barmaja/validators"
	blogValidator "barmaja/validators/blog"

	"github.com/gofiber/fiber/v2"
)

func SetupBlogRoutes(app *fiber.App, h *blogController.Handler) {
	blogGroup := app.Group("/blogs")
	blogGroup.Get("/", h.GetPublishedPosts)
	blogGroup.Get("/:slug", h.GetPostBySlug)

	adminGroup := app.Group("/admin/blogs", middleware.RequireAdmin)
	adminGroup.Get("/", h.AdminGetAllPosts)
	adminGroup.Post("/", blogValidator.Post(), h.AdminCreatePost)
	adminGroup.Get("/:id", validators.ID("id"), h.AdminGetPost)
	adminGroup.Put("/:id", validators.ID("id"), blogValidator.Post(), h.AdminUpdatePost)
	adminGroup.Delete("/:id", validators.ID("id"), h.AdminDeletePost)
}
