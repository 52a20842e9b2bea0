package registrationValidator

import (
	"github.com/gofiber/fiber/v2"

	"pnexus/middleware"
	"pnexus/wizard"
)

// PersonalInfo parses the step-1 body. Field validation is the wizard
// state machine's job, so the middleware only rejects unparsable bodies.
func PersonalInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(wizard.PersonalInfo)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedPersonalInfo", reqData)
		return c.Next()
	}
}

// Experience parses the step-2 body.
func Experience() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(wizard.Background)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedExperience", reqData)
		return c.Next()
	}
}
