package sessionController

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"pnexus/database"
	"pnexus/middleware"
	"pnexus/models"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionFull       = errors.New("session full")
	ErrAlreadyRegistered = errors.New("already registered")
)

// SessionView is a session merged with the caller's registration flag.
type SessionView struct {
	models.ScheduledSession
	IsRegistered bool `json:"is_registered"`
}

// UpcomingSessions returns active sessions from the given cutoff onward,
// ascending by date, each flagged with whether the user already
// registered.
func UpcomingSessions(db *gorm.DB, userID uint, from time.Time) ([]SessionView, error) {
	var sessions []models.ScheduledSession
	if err := db.Where("is_active = ? AND is_deleted = ? AND session_date >= ?", true, false, from).
		Order("session_date asc").Find(&sessions).Error; err != nil {
		return nil, err
	}

	var regs []models.SessionRegistration
	if err := db.Where("user_id = ?", userID).Find(&regs).Error; err != nil {
		return nil, err
	}
	registered := make(map[uint]bool, len(regs))
	for _, r := range regs {
		registered[r.SessionID] = true
	}

	views := make([]SessionView, len(sessions))
	for i, s := range sessions {
		views[i] = SessionView{ScheduledSession: s, IsRegistered: registered[s.ID]}
	}
	return views, nil
}

// RegisterForSession registers a user for a session in one transaction:
// a capacity-guarded atomic increment first (0 rows means full), then the
// unique-indexed insert. A duplicate rolls the increment back, so the
// participant count can neither exceed max_participants nor drift on
// partial failure.
func RegisterForSession(db *gorm.DB, sessionID, userID uint) (*models.SessionRegistration, error) {
	var reg models.SessionRegistration
	err := db.Transaction(func(tx *gorm.DB) error {
		var sess models.ScheduledSession
		if err := tx.Where("id = ? AND is_active = ? AND is_deleted = ?", sessionID, true, false).
			First(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		// Pre-check mirrors the unique index for a clean error; the index
		// is what decides under concurrency.
		var existing models.SessionRegistration
		err := tx.Where("session_id = ? AND user_id = ?", sessionID, userID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		res := tx.Model(&models.ScheduledSession{}).
			Where("id = ? AND (max_participants IS NULL OR current_participants < max_participants)", sessionID).
			UpdateColumn("current_participants", gorm.Expr("current_participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSessionFull
		}

		reg = models.SessionRegistration{SessionID: sessionID, UserID: userID}
		if err := tx.Create(&reg).Error; err != nil {
			if isDuplicateErr(err) {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key")
}

// ListUpcoming serves the student session list. A read failure degrades
// to an empty list so the dashboard still renders.
func ListUpcoming(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	views, err := UpcomingSessions(database.Database.Db, userID, now.BeginningOfDay())
	if err != nil {
		log.Printf("Error fetching upcoming sessions: %v", err)
		views = []SessionView{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", views)
}

// Register handles a session registration request.
func Register(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID, ok := c.Locals("sessionID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session id!", nil)
	}

	reg, err := RegisterForSession(database.Database.Db, uint(sessionID), userID)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found or not active!", nil)
	case errors.Is(err, ErrAlreadyRegistered):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already registered for this session!", nil)
	case errors.Is(err, ErrSessionFull):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session is full!", nil)
	case err != nil:
		log.Printf("Error registering for session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register for session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registered for session successfully!", reg)
}
