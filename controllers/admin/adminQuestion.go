package adminController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
)

// ListQuestions returns all questions with the asking student's details.
func ListQuestions(c *fiber.Ctx) error {
	var questions []models.Question
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	type QuestionWithUser struct {
		models.Question
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	result := make([]QuestionWithUser, len(questions))
	for i, q := range questions {
		var user models.User
		database.Database.Db.Select("name, email").Where("id = ?", q.UserID).First(&user)
		result[i] = QuestionWithUser{
			Question:  q,
			UserName:  user.Name,
			UserEmail: user.Email,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", result)
}

// AnswerQuestion records the admin's answer.
func AnswerQuestion(c *fiber.Ctx) error {
	admin := c.Locals("adminUser").(models.User)
	questionID := c.Locals("questionID").(int)
	answer := c.Locals("validatedAnswer").(string)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	now := time.Now()
	question.Answer = answer
	question.AnsweredBy = &admin.ID
	question.AnsweredAt = &now

	if err := database.Database.Db.Save(&question).Error; err != nil {
		log.Printf("Error answering question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer saved successfully!", question)
}

// ToggleQuestionPublic flips a question's public visibility.
func ToggleQuestionPublic(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsPublic = !question.IsPublic
	if err := database.Database.Db.Save(&question).Error; err != nil {
		log.Printf("Error toggling question visibility: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	message := "Question made private!"
	if question.IsPublic {
		message = "Question made public!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, question)
}

// DeleteQuestion soft-deletes a question.
func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		log.Printf("Error deleting question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
