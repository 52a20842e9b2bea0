package adminController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
)

// DashboardStats aggregates the read-only analytics counters.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents, pendingRegistrations, activeSessions, openQuestions, publishedMaterials int64

	// A failed counter degrades to zero but still leaves a trace in the log
	countOrLog := func(name string, q *gorm.DB, dest *int64) {
		if err := q.Count(dest).Error; err != nil {
			log.Printf("Error counting %s for dashboard: %v", name, err)
		}
	}
	countOrLog("students", db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, "STUDENT"), &totalStudents)
	countOrLog("pending registrations", db.Model(&models.Registration{}).Where("is_deleted = ? AND status = ?", false, models.RegistrationPending), &pendingRegistrations)
	countOrLog("active sessions", db.Model(&models.ScheduledSession{}).Where("is_deleted = ? AND is_active = ?", false, true), &activeSessions)
	countOrLog("open questions", db.Model(&models.Question{}).Where("is_deleted = ? AND answer = ?", false, ""), &openQuestions)
	countOrLog("published materials", db.Model(&models.StudyMaterial{}).Where("is_deleted = ? AND is_published = ?", false, true), &publishedMaterials)

	// Get recent registrations
	type RecentRegistration struct {
		FullName    string    `json:"full_name"`
		Email       string    `json:"email"`
		Status      string    `json:"status"`
		SubmittedAt time.Time `json:"submitted_at"`
	}

	var registrations []models.Registration
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Limit(5).Find(&registrations).Error; err != nil {
		log.Printf("Error fetching recent registrations for dashboard: %v", err)
	}

	recent := make([]RecentRegistration, len(registrations))
	for i, r := range registrations {
		recent[i] = RecentRegistration{
			FullName:    r.FullName,
			Email:       r.Email,
			Status:      r.Status,
			SubmittedAt: r.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_students":        totalStudents,
			"pending_registrations": pendingRegistrations,
			"active_sessions":       activeSessions,
			"open_questions":        openQuestions,
			"published_materials":   publishedMaterials,
		},
		"recent_registrations": recent,
	})
}
