// Package validators holds the request validation shared by the per-area
// validator middlewares.
package validators

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"barmaja/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Messages overrides generated messages, keyed by "field.tag".
type Messages map[string]string

// Check validates req and returns a message per failing field, keyed by the
// dotted JSON path (content_orders.0.id).
func Check(req interface{}, overrides Messages) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	errors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		if _, seen := errors[field]; seen {
			continue
		}
		if msg, ok := overrides[fe.Field()+"."+fe.Tag()]; ok {
			errors[field] = msg
			continue
		}
		errors[field] = message(fe)
	}
	return errors
}

func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

func message(fe validator.FieldError) string {
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "min", "gte":
		if isString {
			return fmt.Sprintf("The %s field must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", label, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", label, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", label)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}

// Body parses the JSON or form body into a new T, validates it and stores
// it under key in c.Locals.
func Body[T any](key string, overrides Messages) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := Check(reqData, overrides); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals(key, reqData)
		return c.Next()
	}
}

// ID checks that route parameters are positive integers and stores each
// as a uint under its own name.
func ID(params ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, param := range params {
			id, err := strconv.ParseUint(c.Params(param), 10, 64)
			if err != nil || id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
			}
			c.Locals(param, uint(id))
		}
		return c.Next()
	}
}

// ParamID returns a parameter stored by ID.
func ParamID(c *fiber.Ctx, param string) uint {
	id, _ := c.Locals(param).(uint)
	return id
}
