package userRoutes

import (
	userController "farmsync/controllers/user"
	"farmsync/middleware"
	"farmsync/models"
	userValidator "farmsync/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users", middleware.JWTMiddleware, middleware.LoadUser)

	userGroup.Get("/me", userController.Me)
	userGroup.Put("/me", userValidator.UpdateMe(), userController.UpdateMe)

	// Admin-only user management
	userGroup.Get("/", middleware.RequireRole(models.RoleAdmin), userController.ListUsers)
	userGroup.Post("/", middleware.RequireRole(models.RoleAdmin), userValidator.CreateUser(), userController.CreateUser)

	// Dynamic ID route (MUST come after specific routes)
	userGroup.Get("/:id", userController.GetUser)
}
