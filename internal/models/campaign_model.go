package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignPublished CampaignStatus = "published"
	CampaignArchived  CampaignStatus = "archived"
)

func EnsureCampaignEnum(db *gorm.DB) error {
	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'campaign_status') THEN
				CREATE TYPE campaign_status AS ENUM (
					'draft',
					'scheduled',
					'published',
					'archived'
				);
			END IF;
		END
		$$;
	`).Error
}

type Campaign struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Slug             string          `gorm:"size:100;uniqueIndex" json:"slug"`
	Title            string          `gorm:"size:255" json:"title"`
	ShortDescription string          `gorm:"size:500" json:"short_description"`
	Content          string          `gorm:"type:text" json:"content"`
	ImageURLs        datatypes.JSON  `json:"image_urls,omitempty"`
	VideoURLs        datatypes.JSON  `json:"video_urls,omitempty"`
	Status           CampaignStatus  `gorm:"type:campaign_status;default:'draft';index" json:"status"`
	StartDate        *time.Time      `gorm:"index" json:"start_date,omitempty"`
	EndDate          *time.Time      `json:"end_date,omitempty"`
	EnableForm       bool            `json:"enable_form"`
	SuccessMessage   string          `gorm:"size:500" json:"success_message,omitempty"`
	RedirectURL      string          `gorm:"size:500" json:"redirect_url,omitempty"`
	Views            int64           `gorm:"default:0" json:"views"`
	FormFields       []CampaignField `gorm:"foreignKey:CampaignID" json:"form_fields"`
	CTAs             []CampaignCTA   `gorm:"foreignKey:CampaignID" json:"ctas"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

// CampaignField describes one input of a campaign's lead-capture form.
// Name is the key visitors submit under, so it must be unique per campaign.
type CampaignField struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CampaignID  uint           `gorm:"index" json:"campaign_id"`
	Name        string         `gorm:"size:100" json:"name"`
	Label       string         `gorm:"size:255" json:"label"`
	Type        string         `gorm:"size:50" json:"type"` // text, email, tel, textarea, select, ...
	Required    bool           `json:"required"`
	Placeholder string         `gorm:"size:255" json:"placeholder,omitempty"`
	Options     datatypes.JSON `json:"options,omitempty"` // select-like types
	Position    int            `json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type CampaignCTA struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CampaignID uint      `gorm:"index" json:"campaign_id"`
	Label      string    `gorm:"size:100" json:"label"`
	URL        string    `gorm:"size:500" json:"url"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CampaignSubmission is immutable once created. Data keys matched the
// campaign's form fields at submission time; the schema may change later.
type CampaignSubmission struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CampaignID uint           `gorm:"index" json:"campaign_id"`
	Campaign   *Campaign      `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Data       datatypes.JSON `json:"data"`
	IPAddress  string         `gorm:"size:64" json:"ip_address"`
	UserAgent  string         `gorm:"size:500" json:"user_agent"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}

// CampaignSummary is the list-view projection: no content, no form schema.
type CampaignSummary struct {
	ID               uint           `json:"id"`
	Slug             string         `json:"slug"`
	Title            string         `json:"title"`
	ShortDescription string         `json:"short_description"`
	Status           CampaignStatus `json:"status"`
	StartDate        *time.Time     `json:"start_date,omitempty"`
	EndDate          *time.Time     `json:"end_date,omitempty"`
	EnableForm       bool           `json:"enable_form"`
	Views            int64          `json:"views"`
	CreatedAt        time.Time      `json:"created_at"`
}
