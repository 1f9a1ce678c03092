package dashboardRoutes

import (
	dashboardController "farmsync/controllers/dashboard"
	"farmsync/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/dashboard", middleware.JWTMiddleware, middleware.LoadUser)

	dashboardGroup.Get("/stats", dashboardController.GetStats)
	dashboardGroup.Get("/analytics", dashboardController.GetAnalytics)
}
