package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminController "pnexus/controllers/admin"
	"pnexus/middleware"
	adminValidator "pnexus/validators/admin"
)

// SetupAdminRoutes sets up the admin console routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Study materials
	materialGroup := adminGroup.Group("/materials")
	materialGroup.Get("/", adminController.ListMaterials)
	materialGroup.Post("/", adminValidator.CreateMaterial(), adminController.CreateMaterial)
	materialGroup.Put("/:id", adminValidator.UpdateMaterial(), adminController.UpdateMaterial)
	materialGroup.Delete("/:id", adminValidator.MaterialID(), adminController.DeleteMaterial)
	materialGroup.Post("/:id/toggle-publish", adminValidator.MaterialID(), adminController.ToggleMaterialPublish)

	// Scheduled sessions
	sessionGroup := adminGroup.Group("/sessions")
	sessionGroup.Get("/", adminController.ListSessions)
	sessionGroup.Post("/", adminValidator.CreateSession(), adminController.CreateSession)
	sessionGroup.Put("/:id", adminValidator.UpdateSession(), adminController.UpdateSession)
	sessionGroup.Delete("/:id", adminValidator.SessionID(), adminController.DeleteSession)
	sessionGroup.Post("/:id/toggle-active", adminValidator.SessionID(), adminController.ToggleSessionActive)

	// Q&A moderation
	questionGroup := adminGroup.Group("/questions")
	questionGroup.Get("/", adminController.ListQuestions)
	questionGroup.Put("/:id/answer", adminValidator.AnswerQuestion(), adminController.AnswerQuestion)
	questionGroup.Delete("/:id", adminValidator.QuestionID(), adminController.DeleteQuestion)
	questionGroup.Post("/:id/toggle-public", adminValidator.QuestionID(), adminController.ToggleQuestionPublic)

	// Users
	userGroup := adminGroup.Group("/users")
	userGroup.Get("/", adminController.ListUsers)
	userGroup.Put("/:id/role", adminValidator.UpdateUserRole(), adminController.UpdateUserRole)
	userGroup.Delete("/:id", adminValidator.UserID(), adminController.DeleteUser)

	// Registration review
	registrationGroup := adminGroup.Group("/registrations")
	registrationGroup.Get("/", adminController.ListRegistrations)
	registrationGroup.Post("/:id/approve", adminValidator.RegistrationID(), adminController.ApproveRegistration)
	registrationGroup.Post("/:id/reject", adminValidator.RejectRegistration(), adminController.RejectRegistration)

	// Dashboard
	adminGroup.Get("/dashboard/stats", adminController.DashboardStats)
}
