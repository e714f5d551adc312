package authValidator

import (
	"barmaja/validators"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name              string `json:"name" validate:"required,max=255"`
	Email             string `json:"email" validate:"required,email,max=255"`
	Password          string `json:"password" validate:"required,min=8,max=72"`
	PreferredLanguage string `json:"preferred_language" validate:"omitempty,oneof=en ar"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register validator middleware
func Register() fiber.Handler {
	return validators.Body[RegisterRequest]("validatedUser", nil)
}

// Login validator middleware
func Login() fiber.Handler {
	return validators.Body[LoginRequest]("validatedLogin", nil)
}
