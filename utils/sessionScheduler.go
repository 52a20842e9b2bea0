package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"pnexus/database"
	"pnexus/models"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SESSION-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// deactivatePastSessions flips is_active off for sessions whose date has passed.
func deactivatePastSessions() {
	db := database.Database.Db

	res := db.Model(&models.ScheduledSession{}).
		Where("is_active = ? AND is_deleted = ? AND session_date < ?", true, false, time.Now()).
		Update("is_active", false)
	if res.Error != nil {
		logScheduler("Error deactivating past sessions: " + res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		logScheduler("Deactivated past sessions")
	}
}

// reconcileParticipantCounts repairs current_participants drift against the
// true registration count (e.g. after a crash between insert and increment).
func reconcileParticipantCounts() {
	db := database.Database.Db

	var sessions []models.ScheduledSession
	if err := db.Where("is_deleted = ?", false).Find(&sessions).Error; err != nil {
		logScheduler("Error fetching sessions for reconciliation: " + err.Error())
		return
	}

	for i := range sessions {
		var count int64
		if err := db.Model(&models.SessionRegistration{}).
			Where("session_id = ?", sessions[i].ID).Count(&count).Error; err != nil {
			logScheduler("Error counting registrations: " + err.Error())
			continue
		}
		if int(count) != sessions[i].CurrentParticipants {
			if err := db.Model(&models.ScheduledSession{}).
				Where("id = ?", sessions[i].ID).
				Update("current_participants", count).Error; err != nil {
				logScheduler("Error reconciling participant count: " + err.Error())
				continue
			}
			logScheduler("Reconciled participant count for session " + sessions[i].Title)
		}
	}
}

// StartSessionScheduler runs session maintenance every hour.
func StartSessionScheduler(cleanupDrafts func()) {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		deactivatePastSessions()
		reconcileParticipantCounts()
		if cleanupDrafts != nil {
			cleanupDrafts()
		}
	})
	if err != nil {
		logScheduler("Error scheduling session maintenance: " + err.Error())
		return
	}

	c.Start()
	logScheduler("Session scheduler started")
}
