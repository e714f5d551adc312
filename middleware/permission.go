package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin allows only administrators through. Anonymous callers get
// 401, authenticated non-admins get 403.
func RequireAdmin(c *fiber.Ctx) error {
	actor := CurrentActor(c)
	if !actor.IsAuthenticated() {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	if !actor.IsAdmin() {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied. Admin only.", nil)
	}
	return c.Next()
}
