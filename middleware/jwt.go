package middleware

import (
	"strings"

	"barmaja/auth"
	"barmaja/config"
	"barmaja/i18n"

	"github.com/gofiber/fiber/v2"
)

const (
	actorKey = "actor"
	langKey  = "lang"
)

// Locale resolves the response language from ?lang= or Accept-Language.
func Locale(c *fiber.Ctx) error {
	lang := i18n.Resolve(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
	c.Locals(langKey, lang)
	c.Set(fiber.HeaderContentLanguage, lang)
	return c.Next()
}

// Lang returns the language chosen by Locale, or English.
func Lang(c *fiber.Ctx) string {
	if lang, ok := c.Locals(langKey).(string); ok {
		return lang
	}
	return i18n.English
}

// JWTMiddleware resolves the bearer token into an auth.Actor. Requests
// without an Authorization header continue as anonymous.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		c.Locals(actorKey, auth.Anonymous)
		return c.Next()
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized access!", nil)
	}

	actor, err := auth.ParseToken(config.AppConfig.JWTKey, authHeader[len("Bearer "):])
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
	}

	c.Locals(actorKey, actor)
	return c.Next()
}

// RequireAuth rejects anonymous requests. It must run after JWTMiddleware.
func RequireAuth(c *fiber.Ctx) error {
	if !CurrentActor(c).IsAuthenticated() {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return c.Next()
}

func CurrentActor(c *fiber.Ctx) auth.Actor {
	if actor, ok := c.Locals(actorKey).(auth.Actor); ok {
		return actor
	}
	return auth.Anonymous
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": i18n.T(Lang(c), message),
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	lang := Lang(c)
	translated := make(map[string]string, len(errors))
	for field, msg := range errors {
		translated[field] = i18n.T(lang, msg)
	}
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", translated)
}
