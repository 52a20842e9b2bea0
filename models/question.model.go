package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	gorm.Model
	UserID     uint       `json:"user_id" gorm:"index;not null"`
	Title      string     `json:"title" gorm:"not null"`
	Content    string     `json:"content" gorm:"not null"`
	Answer     string     `json:"answer"`
	AnsweredBy *uint      `json:"answered_by"`
	AnsweredAt *time.Time `json:"answered_at"`
	IsPublic   bool       `json:"is_public" gorm:"default:false"`
	IsDeleted  bool       `json:"-" gorm:"default:false"`
	User       User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
