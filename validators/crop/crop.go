package cropValidator

import (
	"farmsync/middleware"
	"farmsync/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateCropRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"required,max=20"`
	Category    string  `json:"category" validate:"required,max=50"`
	Published   bool    `json:"published"`
}

// UpdateCropRequest carries partial-update fields; nil means "leave unchanged".
type UpdateCropRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Unit        *string  `json:"unit" validate:"omitempty,max=20"`
	Category    *string  `json:"category" validate:"omitempty,max=50"`
	Published   *bool    `json:"published"`
}

func CreateCrop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCropRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if errors := validators.CheckStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCrop", reqData)
		return c.Next()
	}
}

func UpdateCrop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCropRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if errors := validators.CheckStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateCrop", reqData)
		return c.Next()
	}
}
