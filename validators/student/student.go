package studentValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pnexus/middleware"
)

// SessionID validates the :id route param.
func SessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid session id!"})
		}

		c.Locals("sessionID", id)
		return c.Next()
	}
}

// WeekNumber validates the :week route param.
func WeekNumber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		week, err := strconv.Atoi(c.Params("week"))
		if err != nil || week < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"week": "Invalid week number!"})
		}

		c.Locals("weekNumber", week)
		return c.Next()
	}
}

// CreateQuestion validates a new question body.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Question content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}
