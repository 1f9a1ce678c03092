package userController

import (
	"errors"
	"farmsync/config"
	"farmsync/database"
	"farmsync/middleware"
	"farmsync/models"
	userValidator "farmsync/validators/user"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Me returns the authenticated user's own record
func Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user)
}

// UpdateMe updates the caller's profile. Only fields present in the payload
// change; the role can never be changed after creation.
func UpdateMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	reqData, ok := c.Locals("validatedUpdateMe").(*userValidator.UpdateMeRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	db := database.Database.Db

	if reqData.Email != nil && *reqData.Email != user.Email {
		if err := db.Where("email = ?", *reqData.Email).First(&models.User{}).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Email is already registered!")
		}
		user.Email = *reqData.Email
	}
	if reqData.Name != nil {
		user.Name = *reqData.Name
	}
	if reqData.PhoneNumber != nil {
		user.PhoneNumber = *reqData.PhoneNumber
	}
	if reqData.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to process your request!")
		}
		user.Password = string(hashedPassword)
	}

	if err := db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Email is already registered!")
		}
		log.Printf("Error updating user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to update profile!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// ListUsers returns all users. Admin only.
func ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 100)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.User{}).Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to fetch users!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CreateUser creates a user with any role. Admin only.
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Email is already registered!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to process your request!")
	}

	newUser := models.User{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Password:    string(hashedPassword),
		Role:        models.Role(reqData.Role),
		PhoneNumber: reqData.PhoneNumber,
	}

	if err := db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Email is already registered!")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to create user!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", newUser)
}

// GetUser returns a user by id. Callers always see their own record; any
// other record is admin only. Ownership failures are 403, not 404, when the
// record exists.
func GetUser(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid user id!")
	}

	if uint(id) == user.ID {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user)
	}

	var target models.User
	if err := database.Database.Db.Where("id = ?", id).First(&target).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "User not found!")
	}

	if user.Role != models.RoleAdmin {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You do not have permission to access this resource!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", target)
}
