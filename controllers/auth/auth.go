package authController

import (
	"context"
	"errors"
	"strings"
	"time"

	"barmaja/apperr"
	"barmaja/auth"
	"barmaja/config"
	"barmaja/database"
	"barmaja/i18n"
	"barmaja/middleware"
	"barmaja/models"
	"barmaja/oops"
	"barmaja/utils"
	authValidator "barmaja/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errEmailTaken = apperr.FieldError("email", "Email already registered!")

type Handler struct {
	DB       *gorm.DB
	Notifier *utils.Notifier
}

func New(db *gorm.DB, notifier *utils.Notifier) *Handler {
	return &Handler{DB: db, Notifier: notifier}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*authValidator.RegisterRequest)
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	var count int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if count > 0 {
		return middleware.ErrorResponse(c, errEmailTaken)
	}

	hashedPassword, err := auth.HashPassword(reqData.Password, config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ErrorResponse(c, oops.New(err, "failed to hash password"))
	}

	lang := reqData.PreferredLanguage
	if lang == "" {
		lang = middleware.Lang(c)
	}
	newUser := models.User{
		Name:              strings.TrimSpace(reqData.Name),
		Email:             email,
		Password:          hashedPassword,
		Role:              models.RoleStudent,
		PreferredLanguage: lang,
	}
	if err := h.DB.Create(&newUser).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return middleware.ErrorResponse(c, errEmailTaken)
		}
		return middleware.ErrorResponse(c, oops.New(err, "failed to create user"))
	}

	token, err := auth.GenerateJWT(config.AppConfig.JWTKey, config.AppConfig.JWTTTL, &newUser)
	if err != nil {
		return middleware.ErrorResponse(c, oops.New(err, "failed to sign token"))
	}

	if h.Notifier != nil {
		user := newUser
		utils.Go("welcome email", func(ctx context.Context) error {
			return h.Notifier.SendWelcomeEmail(ctx, &user)
		})
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful!", fiber.Map{
		"token": token,
		"user":  newUser,
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	var user models.User
	err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(reqData.Email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !auth.CheckPassword(user.Password, reqData.Password)) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := auth.GenerateJWT(config.AppConfig.JWTKey, config.AppConfig.JWTTTL, &user)
	if err != nil {
		return middleware.ErrorResponse(c, oops.New(err, "failed to sign token"))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":      token,
		"expires_at": time.Now().Add(config.AppConfig.JWTTTL),
		"user":       user,
		"rtl":        i18n.IsRTL(user.PreferredLanguage),
	})
}
