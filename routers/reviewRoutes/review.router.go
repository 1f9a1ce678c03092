package reviewRoutes

import (
	reviewController "farmsync/controllers/review"
	"farmsync/middleware"
	"farmsync/models"
	reviewValidator "farmsync/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/reviews", middleware.JWTMiddleware, middleware.LoadUser)

	reviewGroup.Get("/", reviewController.ListReviews)
	reviewGroup.Post("/", middleware.RequireRole(models.RoleBuyer), reviewValidator.CreateReview(), reviewController.CreateReview)

	reviewGroup.Get("/:id", reviewController.GetReview)
	reviewGroup.Put("/:id", middleware.RequireRole(models.RoleBuyer), reviewValidator.UpdateReview(), reviewController.UpdateReview)
}
