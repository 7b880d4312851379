package models

import (
	"time"

	"gorm.io/gorm"
)

type ContactMessage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100" json:"name"`
	Email     string         `gorm:"size:100;index" json:"email"`
	Subject   string         `gorm:"size:255" json:"subject,omitempty"`
	Message   string         `gorm:"type:text" json:"message"`
	IPAddress string         `gorm:"size:64" json:"ip_address"`
	Read      bool           `gorm:"default:false;index" json:"read"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
