package authRoutes

import (
	authController "barmaja/controllers/auth"
	authValidator "barmaja/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, h *authController.Handler) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), h.Register)
	authGroup.Post("/login", authValidator.Login(), h.Login)
}
