package adminController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
	"pnexus/utils"
)

// ListRegistrations returns submitted applications, optionally filtered
// by status, newest first, each with a viewable payment-proof URL.
func ListRegistrations(c *fiber.Ctx) error {
	status := c.Query("status")

	db := database.Database.Db.Model(&models.Registration{}).Where("is_deleted = ?", false)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var registrations []models.Registration
	if err := db.Order("created_at desc").Find(&registrations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	type RegistrationWithProof struct {
		models.Registration
		PaymentProofURL string `json:"payment_proof_url"`
	}

	result := make([]RegistrationWithProof, len(registrations))
	for i, r := range registrations {
		result[i] = RegistrationWithProof{
			Registration:    r,
			PaymentProofURL: utils.GetFileURL(r.PaymentProofPath),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", result)
}

// ApproveRegistration marks a pending registration approved, putting its
// email on the signup allow-list, and notifies the applicant.
func ApproveRegistration(c *fiber.Ctx) error {
	admin := c.Locals("adminUser").(models.User)
	registrationID := c.Locals("registrationID").(int)

	var registration models.Registration
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", registrationID, false).First(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration not found!", nil)
	}

	if registration.Status != models.RegistrationPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Registration is not pending!", nil)
	}

	now := time.Now()
	registration.Status = models.RegistrationApproved
	registration.ReviewedBy = &admin.ID
	registration.ReviewedAt = &now

	if err := database.Database.Db.Save(&registration).Error; err != nil {
		log.Printf("Error approving registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve registration!", nil)
	}

	go utils.SendRegistrationApprovedEmail(registration.Email, registration.FullName)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration approved successfully!", registration)
}

// RejectRegistration marks a pending registration rejected with a reason.
func RejectRegistration(c *fiber.Ctx) error {
	admin := c.Locals("adminUser").(models.User)
	registrationID := c.Locals("registrationID").(int)
	reason := c.Locals("validatedRejectionReason").(string)

	var registration models.Registration
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", registrationID, false).First(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration not found!", nil)
	}

	if registration.Status != models.RegistrationPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Registration is not pending!", nil)
	}

	now := time.Now()
	registration.Status = models.RegistrationRejected
	registration.ReviewedBy = &admin.ID
	registration.ReviewedAt = &now
	registration.RejectionReason = reason

	if err := database.Database.Db.Save(&registration).Error; err != nil {
		log.Printf("Error rejecting registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject registration!", nil)
	}

	go utils.SendRegistrationRejectedEmail(registration.Email, registration.FullName, reason)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration rejected!", registration)
}
