package studentRoutes

import (
	"github.com/gofiber/fiber/v2"

	materialController "pnexus/controllers/material"
	progressController "pnexus/controllers/progress"
	questionController "pnexus/controllers/question"
	sessionController "pnexus/controllers/session"
	"pnexus/middleware"
	studentValidator "pnexus/validators/student"
)

// SetupStudentRoutes sets up the authenticated student dashboard routes
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/student", middleware.JWTMiddleware)

	// Course content & progress
	studentGroup.Get("/materials", materialController.ListPublished)
	studentGroup.Get("/progress", progressController.GetProgress)
	studentGroup.Post("/progress/week/:week/complete", studentValidator.WeekNumber(), progressController.MarkWeekComplete)
	studentGroup.Post("/progress/session/:id/complete", studentValidator.SessionID(), progressController.MarkSessionComplete)

	// Live sessions
	studentGroup.Get("/sessions", sessionController.ListUpcoming)
	studentGroup.Post("/sessions/:id/register", studentValidator.SessionID(), sessionController.Register)

	// Q&A
	studentGroup.Get("/questions", questionController.List)
	studentGroup.Post("/questions", studentValidator.CreateQuestion(), questionController.Create)
}
