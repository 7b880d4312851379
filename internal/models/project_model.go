package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Slug        string          `gorm:"size:100;uniqueIndex" json:"slug"`
	Title       string          `gorm:"size:255" json:"title"`
	Category    string          `gorm:"size:100;index" json:"category"`
	Client      string          `gorm:"size:255" json:"client,omitempty"`
	Description string          `gorm:"size:500" json:"description"`
	Content     string          `gorm:"type:text" json:"content"`
	HeroImage   string          `gorm:"size:500" json:"hero_image,omitempty"`
	Featured    bool            `gorm:"index" json:"featured"`
	Published   bool            `gorm:"index" json:"published"`
	Images      []ProjectImage  `gorm:"foreignKey:ProjectID" json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

type ProjectImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"index" json:"project_id"`
	URL       string         `gorm:"size:500" json:"url"`
	Alt       string         `gorm:"size:255" json:"alt,omitempty"`
	Order     int            `json:"order"`
	Meta      datatypes.JSON `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
