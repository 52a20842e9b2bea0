package registrationController

import (
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pnexus/config"
	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
	"pnexus/utils"
	"pnexus/wizard"
)

// Drafts live in memory only: an abandoned browser tab costs nothing and
// a submitted draft is destroyed. Keyed by a server-generated draft ID.
// The draft itself is not safe for concurrent use, so every handler holds
// the entry's mutex while it reads or mutates the draft.
type draftEntry struct {
	mu        sync.Mutex
	draft     *wizard.Draft
	createdAt time.Time
}

var (
	draftsMu sync.Mutex
	drafts   = make(map[string]*draftEntry)
)

// CleanupStaleDrafts drops drafts older than 24h. Wired into the cron
// scheduler from main.
func CleanupStaleDrafts() {
	cutoff := time.Now().Add(-24 * time.Hour)
	draftsMu.Lock()
	defer draftsMu.Unlock()
	for id, entry := range drafts {
		if entry.createdAt.Before(cutoff) {
			delete(drafts, id)
		}
	}
}

func getDraft(c *fiber.Ctx) (*draftEntry, string, bool) {
	id := c.Params("draftId")
	draftsMu.Lock()
	entry, ok := drafts[id]
	draftsMu.Unlock()
	if !ok {
		return nil, "", false
	}
	return entry, id, true
}

func draftView(id string, d *wizard.Draft) fiber.Map {
	return fiber.Map{
		"draft_id":   id,
		"step":       d.Step,
		"personal":   d.Personal,
		"background": d.Background,
		"has_proof":  d.Proof != nil,
	}
}

// wizardError maps state-machine errors onto the response envelope.
func wizardError(c *fiber.Ctx, err error) error {
	var stepErr *wizard.StepError
	switch {
	case errors.As(err, &stepErr):
		return middleware.ValidationErrorResponse(c, stepErr.Fields)
	case errors.Is(err, wizard.ErrSubmitted):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Registration already submitted!", nil)
	case errors.Is(err, wizard.ErrWrongStep):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Operation not allowed at this step!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

// StartDraft opens a fresh wizard at step 1.
func StartDraft(c *fiber.Ctx) error {
	id := uuid.NewString()
	draftsMu.Lock()
	drafts[id] = &draftEntry{draft: wizard.New(), createdAt: time.Now()}
	draftsMu.Unlock()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration started!", fiber.Map{
		"draft_id": id,
		"step":     wizard.StepPersonalInfo,
	})
}

// GetDraft returns the current wizard state.
func GetDraft(c *fiber.Ctx) error {
	entry, id, ok := getDraft(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration draft not found!", nil)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft fetched successfully!", draftView(id, entry.draft))
}

// SubmitPersonalInfo records step-1 fields and advances on valid input.
func SubmitPersonalInfo(c *fiber.Ctx) error {
	entry, id, ok := getDraft(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration draft not found!", nil)
	}

	reqData, ok := c.Locals("validatedPersonalInfo").(*wizard.PersonalInfo)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.draft.SetPersonalInfo(*reqData); err != nil {
		return wizardError(c, err)
	}
	if err := entry.draft.Next(); err != nil {
		return wizardError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Personal info saved!", draftView(id, entry.draft))
}

// SubmitExperience records step-2 fields and advances on valid input.
func SubmitExperience(c *fiber.Ctx) error {
	entry, id, ok := getDraft(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration draft not found!", nil)
	}

	reqData, ok := c.Locals("validatedExperience").(*wizard.Background)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.draft.SetBackground(*reqData); err != nil {
		return wizardError(c, err)
	}
	if err := entry.draft.Next(); err != nil {
		return wizardError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Experience saved!", draftView(id, entry.draft))
}

// PrevStep goes one step back without validating.
func PrevStep(c *fiber.Ctx) error {
	entry, id, ok := getDraft(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration draft not found!", nil)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.draft.Prev(); err != nil {
		return wizardError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Step changed!", draftView(id, entry.draft))
}

// UploadPaymentProof accepts the payment screenshot into the draft. The
// file is rejected up front unless it is an image of at most 5 MB.
func UploadPaymentProof(c *fiber.Ctx) error {
	entry, id, ok := getDraft(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration draft not found!", nil)
	}

	fileHeader, err := c.FormFile("payment_proof")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"payment_proof": "Payment proof file is required!"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}

	// Sniff the real content type instead of trusting the client header
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	contentType := http.DetectContentType(head)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.draft.AttachProof(wizard.Proof{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Data:        data,
	}); err != nil {
		return wizardError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment proof attached!", draftView(id, entry.draft))
}

// Submit stores the proof file, then inserts the registration record.
// Upload failure short-circuits before the insert; an insert failure
// removes the just-stored file so no orphan is left behind.
func Submit(c *fiber.Ctx) error {
	entry, id, ok := getDraft(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration draft not found!", nil)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	draft := entry.draft

	if err := draft.Submittable(); err != nil {
		return wizardError(c, err)
	}

	proof := draft.Proof
	path, err := utils.SaveUploadedFile(config.AppConfig.UploadDir, proof.Filename, proof.Data)
	if err != nil {
		log.Printf("Error storing payment proof: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store payment proof!", nil)
	}

	registration := models.Registration{
		FullName:         draft.Personal.FullName,
		Email:            draft.Personal.Email,
		Phone:            draft.Personal.Phone,
		ExperienceLevel:  draft.Background.ExperienceLevel,
		ReferredBy:       draft.Background.ReferredBy,
		Motivation:       draft.Background.Motivation,
		PaymentProofPath: path,
		Status:           models.RegistrationPending,
	}

	if err := database.Database.Db.Create(&registration).Error; err != nil {
		log.Printf("Error saving registration: %v", err)
		if rmErr := utils.RemoveUploadedFile(path); rmErr != nil {
			log.Printf("Error removing orphaned payment proof %s: %v", path, rmErr)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save registration!", nil)
	}

	draft.Complete()
	draftsMu.Lock()
	delete(drafts, id)
	draftsMu.Unlock()

	go utils.SendRegistrationReceivedEmail(registration.Email, registration.FullName)
	go utils.NotifyNewRegistration(registration.ID, registration.FullName, registration.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration submitted successfully!", registration)
}

// AbandonDraft discards a draft (navigation away).
func AbandonDraft(c *fiber.Ctx) error {
	id := c.Params("draftId")
	draftsMu.Lock()
	_, ok := drafts[id]
	delete(drafts, id)
	draftsMu.Unlock()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration draft not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft discarded!", nil)
}
