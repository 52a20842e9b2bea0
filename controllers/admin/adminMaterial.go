package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
)

// ListMaterials returns all study materials, drafts included.
func ListMaterials(c *fiber.Ctx) error {
	var materials []models.StudyMaterial
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("week_number asc, created_at desc").
		Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully!", materials)
}

// CreateMaterial creates a study material.
func CreateMaterial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMaterial").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		WeekNumber   int    `json:"week_number"`
		ContentURL   string `json:"content_url"`
		MaterialType string `json:"material_type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	material := models.StudyMaterial{
		Title:       reqData.Title,
		Description: reqData.Description,
		WeekNumber:  reqData.WeekNumber,
		ContentURL:  reqData.ContentURL,
	}
	if reqData.MaterialType != "" {
		material.MaterialType = reqData.MaterialType
	}

	if err := database.Database.Db.Create(&material).Error; err != nil {
		log.Printf("Error creating material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material created successfully!", material)
}

// UpdateMaterial applies a partial update to a material.
func UpdateMaterial(c *fiber.Ctx) error {
	materialID := c.Locals("materialID").(int)

	reqData, ok := c.Locals("validatedMaterialUpdate").(*struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		WeekNumber   *int    `json:"week_number"`
		ContentURL   *string `json:"content_url"`
		MaterialType *string `json:"material_type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var material models.StudyMaterial
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", materialID, false).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	if reqData.Title != nil {
		material.Title = *reqData.Title
	}
	if reqData.Description != nil {
		material.Description = *reqData.Description
	}
	if reqData.WeekNumber != nil {
		material.WeekNumber = *reqData.WeekNumber
	}
	if reqData.ContentURL != nil {
		material.ContentURL = *reqData.ContentURL
	}
	if reqData.MaterialType != nil {
		material.MaterialType = *reqData.MaterialType
	}

	if err := database.Database.Db.Save(&material).Error; err != nil {
		log.Printf("Error updating material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material updated successfully!", material)
}

// DeleteMaterial soft-deletes a material.
func DeleteMaterial(c *fiber.Ctx) error {
	materialID := c.Locals("materialID").(int)

	var material models.StudyMaterial
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", materialID, false).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	material.IsDeleted = true
	if err := database.Database.Db.Save(&material).Error; err != nil {
		log.Printf("Error deleting material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", nil)
}

// ToggleMaterialPublish flips the published flag.
func ToggleMaterialPublish(c *fiber.Ctx) error {
	materialID := c.Locals("materialID").(int)

	var material models.StudyMaterial
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", materialID, false).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	material.IsPublished = !material.IsPublished
	if err := database.Database.Db.Save(&material).Error; err != nil {
		log.Printf("Error toggling material publish: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update material!", nil)
	}

	message := "Material unpublished!"
	if material.IsPublished {
		message = "Material published!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, material)
}
