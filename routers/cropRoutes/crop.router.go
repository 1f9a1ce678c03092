package cropRoutes

import (
	cropController "farmsync/controllers/crop"
	"farmsync/middleware"
	"farmsync/models"
	cropValidator "farmsync/validators/crop"

	"github.com/gofiber/fiber/v2"
)

func SetupCropRoutes(app *fiber.App) {
	cropGroup := app.Group("/crops", middleware.JWTMiddleware, middleware.LoadUser)

	cropGroup.Get("/", cropController.ListCrops)
	cropGroup.Post("/", middleware.RequireRole(models.RoleFarmer), cropValidator.CreateCrop(), cropController.CreateCrop)

	cropGroup.Get("/:id", cropController.GetCrop)
	cropGroup.Put("/:id", middleware.RequireRole(models.RoleFarmer), cropValidator.UpdateCrop(), cropController.UpdateCrop)
	cropGroup.Post("/:id/photo", middleware.RequireRole(models.RoleFarmer), cropController.UploadCropPhoto)
}
