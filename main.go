package main

import (
	"farmsync/config"
	"farmsync/database"
	authRoutes "farmsync/routers/authRoutes"
	cropRoutes "farmsync/routers/cropRoutes"
	dashboardRoutes "farmsync/routers/dashboardRoutes"
	orderRoutes "farmsync/routers/orderRoutes"
	reviewRoutes "farmsync/routers/reviewRoutes"
	userRoutes "farmsync/routers/userRoutes"
	"farmsync/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded crop photos
	app.Static("/uploads", "./"+config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	cropRoutes.SetupCropRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	utils.InitializeOrderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
