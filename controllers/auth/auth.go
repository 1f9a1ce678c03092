package authController

import (
	"errors"
	"farmsync/config"
	"farmsync/database"
	"farmsync/middleware"
	"farmsync/models"
	authValidator "farmsync/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup registers a farmer or buyer account. Admin accounts are created
// through the admin-only user endpoint, never here.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Email is already registered!")
	}

	// Hash Password
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
		// The unique constraint on email catches the race the check above
		// cannot see.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Email is already registered!")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to Signup user!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthenticated, "Invalid credentials!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthenticated, "Invalid credentials!")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, string(user.Role), user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to process your request!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}
