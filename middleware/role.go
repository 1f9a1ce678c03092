package middleware

import (
	"farmsync/database"
	"farmsync/models"

	"github.com/gofiber/fiber/v2"
)

// LoadUser resolves the authenticated user record and stores it in locals.
// Must run after JWTMiddleware.
func LoadUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, KindUnauthenticated, "Unauthorized: User ID not found")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, KindUnauthenticated, "Unauthorized: User not found")
	}

	c.Locals("user", &user)
	return c.Next()
}

// RequireRole returns a middleware enforcing an exact role match. Roles are
// not hierarchical: an admin does not pass a farmer-only check.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, KindUnauthenticated, "Unauthorized: User not found")
		}
		if user.Role != role {
			return ErrorResponse(c, fiber.StatusForbidden, KindForbidden, "You do not have permission to access this resource!")
		}
		return c.Next()
	}
}

// CurrentUser returns the user stored by LoadUser.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
