package models

import (
	"time"

	"gorm.io/gorm"
)

// ScheduledSession is a live class slot students can register for.
// MaxParticipants nil means unbounded.
type ScheduledSession struct {
	gorm.Model
	Title               string    `json:"title" gorm:"not null"`
	Description         string    `json:"description"`
	SessionDate         time.Time `json:"session_date" gorm:"index;not null"`
	MeetingURL          string    `json:"meeting_url"`
	MaxParticipants     *int      `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants" gorm:"default:0"`
	IsActive            bool      `json:"is_active" gorm:"default:true"`
	IsDeleted           bool      `json:"-" gorm:"default:false"`
}

// SessionRegistration links a user to a session. The composite unique
// index is what rejects duplicate registrations at the data layer.
type SessionRegistration struct {
	gorm.Model
	SessionID uint             `json:"session_id" gorm:"uniqueIndex:idx_session_user;not null"`
	UserID    uint             `json:"user_id" gorm:"uniqueIndex:idx_session_user;not null"`
	Session   ScheduledSession `json:"-" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	User      User             `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
