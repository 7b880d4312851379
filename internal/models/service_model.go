package models

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Slug        string         `gorm:"size:100;uniqueIndex" json:"slug"`
	Name        string         `gorm:"size:255" json:"name"`
	Summary     string         `gorm:"size:500" json:"summary"`
	Description string         `gorm:"type:text" json:"description"`
	Icon        string         `gorm:"size:500" json:"icon,omitempty"`
	Order       int            `gorm:"default:99" json:"order"`
	Active      bool           `gorm:"default:true;index" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
