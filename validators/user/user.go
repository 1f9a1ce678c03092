package userValidator

import (
	"farmsync/middleware"
	"farmsync/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateUserRequest is the admin-only creation payload; unlike signup it may
// create admin accounts.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=farmer buyer admin"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
}

// UpdateMeRequest carries partial-update fields; nil means "leave unchanged".
type UpdateMeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if errors := validators.CheckStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

func UpdateMe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateMeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if errors := validators.CheckStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateMe", reqData)
		return c.Next()
	}
}
