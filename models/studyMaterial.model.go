package models

import "gorm.io/gorm"

type StudyMaterial struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description"`
	WeekNumber   int    `json:"week_number" gorm:"index;not null"`
	ContentURL   string `json:"content_url"`
	MaterialType string `json:"material_type" gorm:"default:'document'"` // video, document, link
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
