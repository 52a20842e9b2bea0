package adminValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"pnexus/middleware"
)

func paramID(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// MaterialID validates the :id route param for material endpoints.
func MaterialID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid material id!"})
		}
		c.Locals("materialID", id)
		return c.Next()
	}
}

// CreateMaterial validates a new study material body.
func CreateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			WeekNumber   int    `json:"week_number"`
			ContentURL   string `json:"content_url"`
			MaterialType string `json:"material_type"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.WeekNumber < 1 {
			errors["week_number"] = "Week number must be at least 1!"
		}
		if reqData.MaterialType != "" && !isValidMaterialType(reqData.MaterialType) {
			errors["material_type"] = "Material type must be video, document or link!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

// UpdateMaterial validates a partial material update body.
func UpdateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid material id!"})
		}

		reqData := new(struct {
			Title        *string `json:"title"`
			Description  *string `json:"description"`
			WeekNumber   *int    `json:"week_number"`
			ContentURL   *string `json:"content_url"`
			MaterialType *string `json:"material_type"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.WeekNumber != nil && *reqData.WeekNumber < 1 {
			errors["week_number"] = "Week number must be at least 1!"
		}
		if reqData.MaterialType != nil && !isValidMaterialType(*reqData.MaterialType) {
			errors["material_type"] = "Material type must be video, document or link!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("materialID", id)
		c.Locals("validatedMaterialUpdate", reqData)
		return c.Next()
	}
}

func isValidMaterialType(t string) bool {
	return t == "video" || t == "document" || t == "link"
}

// SessionID validates the :id route param for session endpoints.
func SessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid session id!"})
		}
		c.Locals("sessionID", id)
		return c.Next()
	}
}

// CreateSession validates a new session body.
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			SessionDate     string `json:"session_date"`
			MeetingURL      string `json:"meeting_url"`
			MaxParticipants *int   `json:"max_participants"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		sessionDate, err := time.Parse(time.RFC3339, reqData.SessionDate)
		if err != nil {
			errors["session_date"] = "Session date must be a valid RFC3339 timestamp!"
		}

		if reqData.MaxParticipants != nil && *reqData.MaxParticipants < 1 {
			errors["max_participants"] = "Max participants must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", &struct {
			Title           string
			Description     string
			SessionDate     time.Time
			MeetingURL      string
			MaxParticipants *int
		}{
			Title:           reqData.Title,
			Description:     reqData.Description,
			SessionDate:     sessionDate,
			MeetingURL:      reqData.MeetingURL,
			MaxParticipants: reqData.MaxParticipants,
		})
		return c.Next()
	}
}

// UpdateSession validates a partial session update body.
func UpdateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid session id!"})
		}

		reqData := new(struct {
			Title           *string `json:"title"`
			Description     *string `json:"description"`
			SessionDate     *string `json:"session_date"`
			MeetingURL      *string `json:"meeting_url"`
			MaxParticipants *int    `json:"max_participants"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		var sessionDate *time.Time
		if reqData.SessionDate != nil {
			parsed, err := time.Parse(time.RFC3339, *reqData.SessionDate)
			if err != nil {
				errors["session_date"] = "Session date must be a valid RFC3339 timestamp!"
			} else {
				sessionDate = &parsed
			}
		}

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.MaxParticipants != nil && *reqData.MaxParticipants < 1 {
			errors["max_participants"] = "Max participants must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sessionID", id)
		c.Locals("validatedSessionUpdate", &struct {
			Title           *string
			Description     *string
			SessionDate     *time.Time
			MeetingURL      *string
			MaxParticipants *int
		}{
			Title:           reqData.Title,
			Description:     reqData.Description,
			SessionDate:     sessionDate,
			MeetingURL:      reqData.MeetingURL,
			MaxParticipants: reqData.MaxParticipants,
		})
		return c.Next()
	}
}

// QuestionID validates the :id route param for question endpoints.
func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid question id!"})
		}
		c.Locals("questionID", id)
		return c.Next()
	}
}

// AnswerQuestion validates the answer body for a question.
func AnswerQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid question id!"})
		}

		reqData := new(struct {
			Answer string `json:"answer"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Answer) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"answer": "Answer is required!"})
		}

		c.Locals("questionID", id)
		c.Locals("validatedAnswer", reqData.Answer)
		return c.Next()
	}
}

// UserID validates the :id route param for user endpoints.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid user id!"})
		}
		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// UpdateUserRole validates the role body for a user.
func UpdateUserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid user id!"})
		}

		reqData := new(struct {
			Role string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Role != "STUDENT" && reqData.Role != "ADMIN" {
			return middleware.ValidationErrorResponse(c, map[string]string{"role": "Role must be STUDENT or ADMIN!"})
		}

		c.Locals("targetUserID", id)
		c.Locals("validatedRole", reqData.Role)
		return c.Next()
	}
}

// RegistrationID validates the :id route param for registration endpoints.
func RegistrationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid registration id!"})
		}
		c.Locals("registrationID", id)
		return c.Next()
	}
}

// RejectRegistration validates the rejection body.
func RejectRegistration() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid registration id!"})
		}

		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Reason) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"reason": "Rejection reason is required!"})
		}

		c.Locals("registrationID", id)
		c.Locals("validatedRejectionReason", reqData.Reason)
		return c.Next()
	}
}
