package progressController

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"pnexus/config"
	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
	"pnexus/progress"
)

var store *progress.Store

// Init builds the process-wide progress store. Called once at app start.
func Init(dataDir string) {
	store = progress.NewStore(filepath.Join(dataDir, "progress"))
}

// publishedTotalWeeks derives the course length from published content:
// the maximum week_number among published materials, 0 if none. A fetch
// failure is logged and treated as "nothing published" so the dashboard
// still renders.
func publishedTotalWeeks() int {
	var maxWeek int
	err := database.Database.Db.Model(&models.StudyMaterial{}).
		Where("is_published = ? AND is_deleted = ?", true, false).
		Select("COALESCE(MAX(week_number), 0)").Scan(&maxWeek).Error
	if err != nil {
		log.Printf("Error fetching published content for progress: %v", err)
		return 0
	}
	return maxWeek
}

// GetProgress returns the learner's full progress snapshot.
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	snap := store.Load(userID, publishedTotalWeeks(), config.AppConfig.CourseStartDate, time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", snap)
}

// MarkWeekComplete flags a week done and returns the refreshed snapshot.
func MarkWeekComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	week, ok := c.Locals("weekNumber").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid week number!", nil)
	}

	if err := store.MarkWeekComplete(userID, week); err != nil {
		log.Printf("Error persisting week completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	snap := store.Load(userID, publishedTotalWeeks(), config.AppConfig.CourseStartDate, time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Week marked complete!", snap)
}

// MarkSessionComplete records a completed session with set semantics.
func MarkSessionComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID, ok := c.Locals("sessionID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session id!", nil)
	}

	if err := store.MarkSessionComplete(userID, uint(sessionID)); err != nil {
		log.Printf("Error persisting session completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	snap := store.Load(userID, publishedTotalWeeks(), config.AppConfig.CourseStartDate, time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session marked complete!", snap)
}
