// Package routers assembles the fiber application.
package routers

import (
	"barmaja/config"
	authController "barmaja/controllers/auth"
	blogController "barmaja/controllers/blog"
	controllers "barmaja/controllers/course"
	"barmaja/locks"
	"barmaja/middleware"
	"barmaja/payment"
	"barmaja/routers/authRoutes"
	"barmaja/routers/blogRoutes"
	"barmaja/routers/courseRoutes"
	"barmaja/services/blogs"
	"barmaja/services/comments"
	"barmaja/services/courses"
	"barmaja/services/dashboard"
	"barmaja/services/enrollments"
	"barmaja/services/lessons"
	"barmaja/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Gateway  payment.Gateway
	Locker   locks.Locker // optional
	Notifier *utils.Notifier
}

// EnrollmentService builds the enrollment service shared by the HTTP
// handlers and the background sweeper.
func EnrollmentService(deps Deps) *enrollments.Service {
	return enrollments.NewService(deps.DB, deps.Gateway, enrollments.Options{
		Currency: deps.Config.PaymentCurrency,
		Locker:   deps.Locker,
		LockTTL:  deps.Config.EnrollLockTTL,
		Notifier: deps.Notifier,
	})
}

func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.FiberErrorHandler,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: !deps.Config.IsProduction()}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,Accept-Language",
	}))
	if !deps.Config.IsProduction() {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}
	app.Use(middleware.Locale, middleware.JWTMiddleware)

	blogService := blogs.NewService(deps.DB)
	courseHandler := &controllers.Handler{
		Courses:     courses.NewService(deps.DB),
		Lessons:     lessons.NewSequencer(deps.DB, lessons.NoCompletions{}),
		Enrollments: EnrollmentService(deps),
		Comments:    comments.NewService(deps.DB),
		Blogs:       blogService,
		Dashboard:   dashboard.NewService(deps.DB),
	}

	authRoutes.SetupAuthRoutes(app, authController.New(deps.DB, deps.Notifier))
	courseRoutes.SetupAdminCourseRoutes(app, courseHandler)
	courseRoutes.SetupCourseRoutes(app, courseHandler)
	blogRoutes.SetupBlogRoutes(app, blogController.New(blogService))

	return app
}
