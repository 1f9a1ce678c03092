package orderValidator

import (
	"farmsync/middleware"
	"farmsync/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	CropID   uint    `json:"cropId" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected completed"`
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if errors := validators.CheckStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}

func UpdateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateOrderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if errors := validators.CheckStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateOrder", reqData)
		return c.Next()
	}
}
