package middleware

import "github.com/gofiber/fiber/v2"

// Error kinds reported to clients alongside the HTTP status code.
const (
	KindUnauthenticated       = "UNAUTHENTICATED"
	KindForbidden             = "FORBIDDEN"
	KindNotFound              = "NOT_FOUND"
	KindInvalidState          = "INVALID_STATE"
	KindInsufficientInventory = "INSUFFICIENT_INVENTORY"
	KindConflict              = "CONFLICT"
	KindValidationError       = "VALIDATION_ERROR"
	KindUnavailable           = "UNAVAILABLE"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse reports a failure with a machine-readable kind
func ErrorResponse(c *fiber.Ctx, statusCode int, kind, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  false,
		"message": message,
		"error": fiber.Map{
			"kind":    kind,
			"message": message,
		},
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  false,
		"message": "Validation failed!",
		"error": fiber.Map{
			"kind":    KindValidationError,
			"message": "Validation failed!",
			"fields":  errors,
		},
	})
}
