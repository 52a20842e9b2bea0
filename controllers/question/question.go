package questionController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
)

// Create posts a new question from the authenticated student.
func Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	question := models.Question{
		UserID:  userID,
		Title:   reqData.Title,
		Content: reqData.Content,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		log.Printf("Error saving question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question posted successfully!", question)
}

// List returns the student's own questions plus public ones, newest
// first. Read failures degrade to an empty list.
func List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var questions []models.Question
	if err := database.Database.Db.
		Where("is_deleted = ? AND (user_id = ? OR is_public = ?)", false, userID, true).
		Order("created_at desc").
		Find(&questions).Error; err != nil {
		log.Printf("Error fetching questions: %v", err)
		questions = []models.Question{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}
