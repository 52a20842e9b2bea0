package materialController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
)

// ListPublished serves published study materials ordered by week. A read
// failure degrades to an empty list so the dashboard still renders.
func ListPublished(c *fiber.Ctx) error {
	var materials []models.StudyMaterial
	if err := database.Database.Db.
		Where("is_published = ? AND is_deleted = ?", true, false).
		Order("week_number asc, created_at asc").
		Find(&materials).Error; err != nil {
		log.Printf("Error fetching study materials: %v", err)
		materials = []models.StudyMaterial{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully!", materials)
}
