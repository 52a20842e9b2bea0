package adminController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
)

// ListSessions returns all scheduled sessions, newest date first.
func ListSessions(c *fiber.Ctx) error {
	var sessions []models.ScheduledSession
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("session_date desc").
		Find(&sessions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", sessions)
}

// CreateSession schedules a new session.
func CreateSession(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSession").(*struct {
		Title           string
		Description     string
		SessionDate     time.Time
		MeetingURL      string
		MaxParticipants *int
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	session := models.ScheduledSession{
		Title:           reqData.Title,
		Description:     reqData.Description,
		SessionDate:     reqData.SessionDate,
		MeetingURL:      reqData.MeetingURL,
		MaxParticipants: reqData.MaxParticipants,
		IsActive:        true,
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session created successfully!", session)
}

// UpdateSession applies a partial update to a session.
func UpdateSession(c *fiber.Ctx) error {
	sessionID := c.Locals("sessionID").(int)

	reqData, ok := c.Locals("validatedSessionUpdate").(*struct {
		Title           *string
		Description     *string
		SessionDate     *time.Time
		MeetingURL      *string
		MaxParticipants *int
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var session models.ScheduledSession
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sessionID, false).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if reqData.Title != nil {
		session.Title = *reqData.Title
	}
	if reqData.Description != nil {
		session.Description = *reqData.Description
	}
	if reqData.SessionDate != nil {
		session.SessionDate = *reqData.SessionDate
	}
	if reqData.MeetingURL != nil {
		session.MeetingURL = *reqData.MeetingURL
	}
	if reqData.MaxParticipants != nil {
		session.MaxParticipants = reqData.MaxParticipants
	}

	if err := database.Database.Db.Save(&session).Error; err != nil {
		log.Printf("Error updating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated successfully!", session)
}

// DeleteSession soft-deletes a session.
func DeleteSession(c *fiber.Ctx) error {
	sessionID := c.Locals("sessionID").(int)

	var session models.ScheduledSession
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sessionID, false).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	session.IsDeleted = true
	session.IsActive = false
	if err := database.Database.Db.Save(&session).Error; err != nil {
		log.Printf("Error deleting session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session deleted successfully!", nil)
}

// ToggleSessionActive flips the active flag.
func ToggleSessionActive(c *fiber.Ctx) error {
	sessionID := c.Locals("sessionID").(int)

	var session models.ScheduledSession
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sessionID, false).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	session.IsActive = !session.IsActive
	if err := database.Database.Db.Save(&session).Error; err != nil {
		log.Printf("Error toggling session active: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	message := "Session deactivated!"
	if session.IsActive {
		message = "Session activated!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, session)
}
