package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
)

// ListUsers returns all accounts, newest first.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// UpdateUserRole switches a user between STUDENT and ADMIN.
func UpdateUserRole(c *fiber.Ctx) error {
	admin := c.Locals("adminUser").(models.User)
	targetUserID := c.Locals("targetUserID").(int)
	role := c.Locals("validatedRole").(string)

	if uint(targetUserID) == admin.ID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot change your own role!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = role
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating user role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", user)
}

// DeleteUser soft-deletes an account.
func DeleteUser(c *fiber.Ctx) error {
	admin := c.Locals("adminUser").(models.User)
	targetUserID := c.Locals("targetUserID").(int)

	if uint(targetUserID) == admin.ID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsDeleted = true
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
