package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "pnexus/controllers/auth"
	"pnexus/middleware"
	authValidator "pnexus/validators/auth"
)

// SetupAuthRoutes sets up signup/login/session routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
}
