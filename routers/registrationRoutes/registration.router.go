package registrationRoutes

import (
	"github.com/gofiber/fiber/v2"

	registrationController "pnexus/controllers/registration"
	registrationValidator "pnexus/validators/registration"
)

// SetupRegistrationRoutes sets up the public registration wizard routes.
// No auth: applicants do not have accounts yet.
func SetupRegistrationRoutes(app *fiber.App) {
	regGroup := app.Group("/registration")

	regGroup.Post("/start", registrationController.StartDraft)
	regGroup.Get("/:draftId", registrationController.GetDraft)
	regGroup.Put("/:draftId/personal-info", registrationValidator.PersonalInfo(), registrationController.SubmitPersonalInfo)
	regGroup.Put("/:draftId/experience", registrationValidator.Experience(), registrationController.SubmitExperience)
	regGroup.Post("/:draftId/payment-proof", registrationController.UploadPaymentProof)
	regGroup.Post("/:draftId/prev", registrationController.PrevStep)
	regGroup.Post("/:draftId/submit", registrationController.Submit)
	regGroup.Delete("/:draftId", registrationController.AbandonDraft)
}
