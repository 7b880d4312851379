package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Post struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Slug        string         `gorm:"size:100;uniqueIndex" json:"slug"`
	Title       string         `gorm:"size:255" json:"title"`
	Excerpt     string         `gorm:"size:500" json:"excerpt"`
	Content     string         `gorm:"type:text" json:"content"`
	CoverImage  string         `gorm:"size:500" json:"cover_image,omitempty"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	Published   bool           `gorm:"index" json:"published"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	AuthorID    uint           `gorm:"index" json:"author_id,omitempty"`
	Author      *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
