package campaign

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNotPublished     = errors.New("campaign is not published")
	ErrFormDisabled     = errors.New("form is disabled")
)

// ValidationErrors is keyed by field name so the frontend can highlight
// the specific inputs that failed.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("submission failed validation on %d field(s)", len(v))
}

const maxPageSize = 100

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// GetPublishedBySlug is the public slug lookup. Draft, scheduled and
// archived campaigns report not-found so their existence never leaks.
func GetPublishedBySlug(slug string) (*models.Campaign, error) {
	var cmp models.Campaign
	err := database.DB.
		Preload("FormFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("CTAs", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Where("slug = ? AND status = ?", slug, models.CampaignPublished).
		First(&cmp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cmp, nil
}

func GetByID(id uint) (*models.Campaign, error) {
	var cmp models.Campaign
	err := database.DB.
		Preload("FormFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("CTAs", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		First(&cmp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cmp, nil
}

// ListCampaigns returns summaries (no content, no form schema) ordered by
// start_date descending. An empty status means all statuses.
func ListCampaigns(status string) ([]models.CampaignSummary, error) {
	query := database.DB.Model(&models.Campaign{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var summaries []models.CampaignSummary
	if err := query.Order("start_date DESC").Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// IncrementViews is fire-and-forget: the counter is a display metric, so a
// failed bump must never fail the surrounding request.
func IncrementViews(campaignID uint) {
	err := database.DB.Model(&models.Campaign{}).
		Where("id = ?", campaignID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		log.Printf("⚠️  Failed to increment views for campaign %d: %v", campaignID, err)
	}
}

// ValidateSubmission checks a visitor payload against the campaign's form
// schema. The payload is stored exactly as submitted; no coercion happens.
func ValidateSubmission(cmp *models.Campaign, payload map[string]interface{}) ValidationErrors {
	errs := ValidationErrors{}

	for key, value := range payload {
		switch value.(type) {
		case string, bool, float64, int, int64, nil:
		default:
			errs[key] = "must be a scalar value"
		}
	}
	if len(errs) > 0 {
		return errs
	}

	for _, field := range cmp.FormFields {
		value, exists := payload[field.Name]

		if !exists || value == nil || value == "" {
			if field.Required {
				errs[field.Name] = fmt.Sprintf("field '%s' is required", field.Name)
			}
			continue
		}

		if field.Type == "email" {
			strVal, ok := value.(string)
			if !ok || !emailRegex.MatchString(strVal) {
				errs[field.Name] = fmt.Sprintf("field '%s' must be a valid email address", field.Name)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmissionMeta struct {
	IPAddress string
	UserAgent string
}

// CreateSubmission runs the full validate-then-persist pipeline for one
// visitor submission and bumps the campaign view counter on success. The
// resolved campaign is returned alongside so callers can surface its
// success message without a second lookup.
func CreateSubmission(campaignID uint, payload map[string]interface{}, meta SubmissionMeta) (*models.CampaignSubmission, *models.Campaign, error) {
	cmp, err := GetByID(campaignID)
	if err != nil {
		return nil, nil, err
	}

	if cmp.Status != models.CampaignPublished {
		return nil, nil, ErrNotPublished
	}

	if !cmp.EnableForm {
		return nil, nil, ErrFormDisabled
	}

	if errs := ValidateSubmission(cmp, payload); errs != nil {
		return nil, nil, errs
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}

	if meta.IPAddress == "" {
		meta.IPAddress = "unknown"
	}
	if meta.UserAgent == "" {
		meta.UserAgent = "unknown"
	}

	sub := models.CampaignSubmission{
		CampaignID: campaignID,
		Data:       datatypes.JSON(jsonData),
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	}

	err = utils.WithRetry(3, 100*time.Millisecond, func() error {
		return database.DB.Create(&sub).Error
	})
	if err != nil {
		return nil, nil, err
	}

	IncrementViews(campaignID)

	return &sub, cmp, nil
}

// ListSubmissions paginates a campaign's submissions newest first. The
// page size is capped to keep table scans bounded.
func ListSubmissions(campaignID uint, page, limit int) ([]models.CampaignSubmission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.CampaignSubmission{}).
		Where("campaign_id = ?", campaignID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []models.CampaignSubmission
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

type FieldInput struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type CTAInput struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Order *int   `json:"order"` // nil falls back to list position
}

type CampaignInput struct {
	Slug             string       `json:"slug"`
	Title            string       `json:"title"`
	ShortDescription string       `json:"short_description"`
	Content          string       `json:"content"`
	ImageURLs        []string     `json:"image_urls"`
	VideoURLs        []string     `json:"video_urls"`
	Status           string       `json:"status"`
	StartDate        *time.Time   `json:"start_date"`
	EndDate          *time.Time   `json:"end_date"`
	EnableForm       bool         `json:"enable_form"`
	SuccessMessage   string       `json:"success_message"`
	RedirectURL      string       `json:"redirect_url"`
	FormFields       []FieldInput `json:"form_fields"`
	CTAs             []CTAInput   `json:"ctas"`
}

func validateInput(in *CampaignInput) ValidationErrors {
	errs := ValidationErrors{}

	if in.Title == "" {
		errs["title"] = "title is required"
	}
	if in.Slug == "" {
		errs["slug"] = "slug is required"
	} else if !utils.IsValidSlug(in.Slug) {
		errs["slug"] = "slug must be lowercase letters, numbers and hyphens"
	}

	switch models.CampaignStatus(in.Status) {
	case models.CampaignDraft, models.CampaignScheduled, models.CampaignPublished, models.CampaignArchived:
	case "":
		in.Status = string(models.CampaignDraft)
	default:
		errs["status"] = "status must be one of draft, scheduled, published, archived"
	}

	// Duplicate field names would silently overwrite submission keys.
	seen := make(map[string]bool)
	for _, f := range in.FormFields {
		if f.Name == "" {
			errs["form_fields"] = "every form field needs a name"
			break
		}
		if seen[f.Name] {
			errs["form_fields"] = fmt.Sprintf("duplicate field name '%s'", f.Name)
			break
		}
		seen[f.Name] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func marshalURLList(urls []string) datatypes.JSON {
	if urls == nil {
		urls = []string{}
	}
	data, _ := json.Marshal(urls)
	return datatypes.JSON(data)
}

func buildFields(campaignID uint, inputs []FieldInput) []models.CampaignField {
	fields := make([]models.CampaignField, 0, len(inputs))
	for i, f := range inputs {
		field := models.CampaignField{
			CampaignID:  campaignID,
			Name:        f.Name,
			Label:       f.Label,
			Type:        f.Type,
			Required:    f.Required,
			Placeholder: f.Placeholder,
			Position:    i,
		}
		if len(f.Options) > 0 {
			opts, _ := json.Marshal(f.Options)
			field.Options = datatypes.JSON(opts)
		}
		fields = append(fields, field)
	}
	return fields
}

func buildCTAs(campaignID uint, inputs []CTAInput) []models.CampaignCTA {
	ctas := make([]models.CampaignCTA, 0, len(inputs))
	for i, in := range inputs {
		order := i
		if in.Order != nil {
			order = *in.Order
		}
		ctas = append(ctas, models.CampaignCTA{
			CampaignID: campaignID,
			Label:      in.Label,
			URL:        in.URL,
			Order:      order,
		})
	}
	return ctas
}

func CreateCampaign(in *CampaignInput) (*models.Campaign, error) {
	if errs := validateInput(in); errs != nil {
		return nil, errs
	}

	var existing models.Campaign
	if err := database.DB.Where("slug = ?", in.Slug).First(&existing).Error; err == nil {
		return nil, ValidationErrors{"slug": fmt.Sprintf("slug '%s' is already in use", in.Slug)}
	}

	cmp := models.Campaign{
		Slug:             in.Slug,
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		ImageURLs:        marshalURLList(in.ImageURLs),
		VideoURLs:        marshalURLList(in.VideoURLs),
		Status:           models.CampaignStatus(in.Status),
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		EnableForm:       in.EnableForm,
		SuccessMessage:   in.SuccessMessage,
		RedirectURL:      in.RedirectURL,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cmp).Error; err != nil {
			return err
		}
		if fields := buildFields(cmp.ID, in.FormFields); len(fields) > 0 {
			if err := tx.Create(&fields).Error; err != nil {
				return err
			}
		}
		if ctas := buildCTAs(cmp.ID, in.CTAs); len(ctas) > 0 {
			if err := tx.Create(&ctas).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetByID(cmp.ID)
}

// UpdateCampaign replaces scalar fields and fully swaps the form schema and
// CTA list. The delete-then-recreate happens inside one transaction so a
// failure can never leave the campaign with a half-replaced list.
func UpdateCampaign(id uint, in *CampaignInput) (*models.Campaign, error) {
	cmp, err := GetByID(id)
	if err != nil {
		return nil, err
	}

	if errs := validateInput(in); errs != nil {
		return nil, errs
	}

	if in.Slug != cmp.Slug {
		var existing models.Campaign
		if err := database.DB.Where("slug = ? AND id != ?", in.Slug, id).First(&existing).Error; err == nil {
			return nil, ValidationErrors{"slug": fmt.Sprintf("slug '%s' is already in use", in.Slug)}
		}
	}

	cmp.Slug = in.Slug
	cmp.Title = in.Title
	cmp.ShortDescription = in.ShortDescription
	cmp.Content = in.Content
	cmp.ImageURLs = marshalURLList(in.ImageURLs)
	cmp.VideoURLs = marshalURLList(in.VideoURLs)
	cmp.Status = models.CampaignStatus(in.Status)
	cmp.StartDate = in.StartDate
	cmp.EndDate = in.EndDate
	cmp.EnableForm = in.EnableForm
	cmp.SuccessMessage = in.SuccessMessage
	cmp.RedirectURL = in.RedirectURL

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("FormFields", "CTAs").Save(cmp).Error; err != nil {
			return err
		}
		if err := tx.Where("campaign_id = ?", id).Delete(&models.CampaignField{}).Error; err != nil {
			return err
		}
		if err := tx.Where("campaign_id = ?", id).Delete(&models.CampaignCTA{}).Error; err != nil {
			return err
		}
		if fields := buildFields(id, in.FormFields); len(fields) > 0 {
			if err := tx.Create(&fields).Error; err != nil {
				return err
			}
		}
		if ctas := buildCTAs(id, in.CTAs); len(ctas) > 0 {
			if err := tx.Create(&ctas).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetByID(id)
}

// DeleteCampaign removes the campaign and everything it owns: form fields,
// CTAs and recorded submissions, all in one transaction.
func DeleteCampaign(id uint) error {
	if _, err := GetByID(id); err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", id).Delete(&models.CampaignSubmission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("campaign_id = ?", id).Delete(&models.CampaignField{}).Error; err != nil {
			return err
		}
		if err := tx.Where("campaign_id = ?", id).Delete(&models.CampaignCTA{}).Error; err != nil {
			return err
		}
		// Unscoped so the unique slug frees up for reuse.
		return tx.Unscoped().Delete(&models.Campaign{}, id).Error
	})
}
