package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string     `json:"name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Phone     string     `json:"phone" gorm:"default:''"`
	Role      string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	Password  string     `json:"-" gorm:"not null"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `json:"-" gorm:"default:false"`
}
