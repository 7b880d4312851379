package models

import (
	"time"

	"gorm.io/gorm"
)

type MediaFile struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	FileName   string         `gorm:"size:255" json:"file_name"`
	URL        string         `gorm:"size:500" json:"url"`
	Type       string         `gorm:"size:100;index" json:"type"`
	Size       int64          `json:"size"`
	Alt        string         `gorm:"size:255" json:"alt,omitempty"`
	UploadedBy uint           `gorm:"index" json:"uploaded_by"`
	Uploader   *User          `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
