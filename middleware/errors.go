package middleware

import (
	"errors"

	"barmaja/apperr"
	"barmaja/i18n"
	"barmaja/logging"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes err in the response envelope. Domain errors keep
// their message and field map; anything else is logged and hidden behind
// a generic 500.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		logging.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	if appErr.Kind == apperr.KindValidation {
		return ValidationErrorResponse(c, appErr.Fields)
	}

	var data interface{}
	if len(appErr.Fields) > 0 {
		lang := Lang(c)
		fields := make(map[string]string, len(appErr.Fields))
		for field, msg := range appErr.Fields {
			fields[field] = i18n.T(lang, msg)
		}
		data = fields
	}

	return JsonResponse(c, appErr.Kind.Status(), false, appErr.Message, data)
}

// FiberErrorHandler answers errors returned by handlers that did not go
// through ErrorResponse, such as unknown routes.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonResponse(c, fe.Code, false, fe.Message, nil)
	}
	return ErrorResponse(c, err)
}
