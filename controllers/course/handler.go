package controllers

import (
	"math"

	"barmaja/services/blogs"
	"barmaja/services/comments"
	"barmaja/services/courses"
	"barmaja/services/dashboard"
	"barmaja/services/enrollments"
	"barmaja/services/lessons"

	"github.com/gofiber/fiber/v2"
)

const (
	adminPageSize  = 10
	publicPageSize = 6
	homeItems      = 3
)

// Handler serves the admin and public course routes.
type Handler struct {
	Courses     *courses.Service
	Lessons     *lessons.Sequencer
	Enrollments *enrollments.Service
	Comments    *comments.Service
	Blogs       *blogs.Service
	Dashboard   *dashboard.Service
}

func pageParams(c *fiber.Ctx, defaultLimit int) (int, int) {
	return c.QueryInt("page", 1), c.QueryInt("limit", defaultLimit)
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
