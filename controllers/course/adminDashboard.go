package controllers

import (
	"barmaja/middleware"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) AdminDashboardStats(c *fiber.Ctx) error {
	stats, err := h.Dashboard.Stats(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
