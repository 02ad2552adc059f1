// file: internals/helpers/response.go
package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Success response without custom code (default 200)
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

// Success response with custom code (201 for created, etc.)
func JsonWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusCreated, message, data)
}

func JsonUpdated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

// Paginated list response
func JsonList(c *fiber.Ctx, data interface{}, pagination interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":       fiber.StatusOK,
		"status":     "success",
		"data":       data,
		"pagination": pagination,
	})
}

// Plain error response
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// Error response carrying a machine-readable domain code (EMAIL_NOT_FOUND, ...)
func JsonErrorCode(c *fiber.Ctx, httpStatus int, errCode, message string) error {
	return c.Status(httpStatus).JSON(fiber.Map{
		"code":       httpStatus,
		"status":     "error",
		"error_code": errCode,
		"message":    message,
	})
}

// Error response with multiple field errors
func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// Validation errors from validator.v10 → 422 with a field→message map.
// These never reach handlers; the offending request is rejected up front.
func JsonValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = validationMessage(fe)
	}
	return JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validation failed", fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return "Invalid email format."
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters."
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters."
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param() + "."
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param() + "."
	case "uuid":
		return fe.Field() + " must be a valid UUID."
	default:
		return fe.Field() + " is invalid."
	}
}
