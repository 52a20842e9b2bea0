package models

import (
	"time"

	"gorm.io/gorm"
)

// Registration status values
const (
	RegistrationPending  = "PENDING"
	RegistrationApproved = "APPROVED"
	RegistrationRejected = "REJECTED"
)

// Registration is a submitted bootcamp application awaiting manual
// payment verification. An APPROVED registration places its email on
// the signup allow-list.
type Registration struct {
	gorm.Model
	FullName         string     `json:"full_name" gorm:"not null"`
	Email            string     `json:"email" gorm:"index;not null"`
	Phone            string     `json:"phone" gorm:"not null"`
	ExperienceLevel  string     `json:"experience_level" gorm:"not null"` // beginner, intermediate, advanced
	ReferredBy       string     `json:"referred_by"`
	Motivation       string     `json:"motivation"`
	PaymentProofPath string     `json:"payment_proof_path" gorm:"not null"`
	Status           string     `json:"status" gorm:"default:'PENDING'"`
	ReviewedBy       *uint      `json:"reviewed_by"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	RejectionReason  string     `json:"rejection_reason"`
	IsDeleted        bool       `json:"-" gorm:"default:false"`
}
