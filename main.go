package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"pnexus/config"
	progressController "pnexus/controllers/progress"
	registrationController "pnexus/controllers/registration"
	"pnexus/database"
	"pnexus/middleware"
	adminRoutes "pnexus/routers/adminRoutes"
	authRoutes "pnexus/routers/authRoutes"
	registrationRoutes "pnexus/routers/registrationRoutes"
	studentRoutes "pnexus/routers/studentRoutes"
	"pnexus/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	progressController.Init(config.AppConfig.DataDir)

	app := fiber.New(fiber.Config{
		// Payment proofs may be up to 5 MiB; leave headroom for multipart framing
		BodyLimit: 8 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Payment proofs carry applicant PII, so the static mount sits behind
	// the admin guard rather than being served openly
	uploads := app.Group("/uploads", middleware.JWTMiddleware, middleware.AdminOnly)
	uploads.Static("/", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	registrationRoutes.SetupRegistrationRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartSessionScheduler(registrationController.CleanupStaleDrafts)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
