package orderRoutes

import (
	orderController "farmsync/controllers/order"
	"farmsync/middleware"
	"farmsync/models"
	orderValidator "farmsync/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/orders", middleware.JWTMiddleware, middleware.LoadUser)

	orderGroup.Get("/", orderController.ListOrders)
	orderGroup.Post("/", middleware.RequireRole(models.RoleBuyer), orderValidator.CreateOrder(), orderController.CreateOrder)

	orderGroup.Get("/:id", orderController.GetOrder)
	orderGroup.Put("/:id", orderValidator.UpdateOrder(), orderController.UpdateOrderStatus)
}
