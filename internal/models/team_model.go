package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100" json:"name"`
	RoleTitle string         `gorm:"size:100" json:"role_title"`
	Bio       string         `gorm:"type:text" json:"bio,omitempty"`
	Photo     string         `gorm:"size:500" json:"photo,omitempty"`
	Socials   datatypes.JSON `json:"socials,omitempty"` // {"linkedin": "...", "twitter": "..."}
	Order     int            `gorm:"default:99" json:"order"`
	Active    bool           `gorm:"default:true;index" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Testimonial struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Author    string         `gorm:"size:100" json:"author"`
	Company   string         `gorm:"size:100" json:"company,omitempty"`
	Quote     string         `gorm:"type:text" json:"quote"`
	Rating    *int           `json:"rating,omitempty"`
	Approved  bool           `gorm:"index" json:"approved"`
	Order     int            `gorm:"default:99" json:"order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
