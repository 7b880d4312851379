package campaign_test

import (
	"testing"

	"github.com/SakibBhai/zoolyum-backend/internal/campaign"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func formCampaign() *models.Campaign {
	return &models.Campaign{
		FormFields: []models.CampaignField{
			{Name: "full_name", Type: "text", Required: true},
			{Name: "email", Type: "email", Required: true},
			{Name: "budget", Type: "number", Required: false},
		},
	}
}

func TestValidateSubmission(t *testing.T) {
	t.Run("Clean payload passes", func(t *testing.T) {
		errs := campaign.ValidateSubmission(formCampaign(), map[string]interface{}{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
			"budget":    float64(5000),
		})
		assert.Nil(t, errs)
	})

	t.Run("Optional fields may be absent", func(t *testing.T) {
		errs := campaign.ValidateSubmission(formCampaign(), map[string]interface{}{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
		})
		assert.Nil(t, errs)
	})

	t.Run("Extra keys are kept, not rejected", func(t *testing.T) {
		errs := campaign.ValidateSubmission(formCampaign(), map[string]interface{}{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
			"referrer":  "newsletter",
		})
		assert.Nil(t, errs)
	})

	t.Run("Missing and empty required fields", func(t *testing.T) {
		errs := campaign.ValidateSubmission(formCampaign(), map[string]interface{}{
			"full_name": "",
		})
		assert.Len(t, errs, 2)
		assert.Contains(t, errs, "full_name")
		assert.Contains(t, errs, "email")
	})

	t.Run("Email format enforced", func(t *testing.T) {
		errs := campaign.ValidateSubmission(formCampaign(), map[string]interface{}{
			"full_name": "Ada Lovelace",
			"email":     "ada-at-example",
		})
		assert.Len(t, errs, 1)
		assert.Contains(t, errs, "email")
	})

	t.Run("Structural check runs before field rules", func(t *testing.T) {
		errs := campaign.ValidateSubmission(formCampaign(), map[string]interface{}{
			"email": []interface{}{"a@b.com", "c@d.com"},
		})
		assert.Len(t, errs, 1)
		assert.Equal(t, "must be a scalar value", errs["email"])
	})

	t.Run("Booleans and numbers are scalars", func(t *testing.T) {
		errs := campaign.ValidateSubmission(formCampaign(), map[string]interface{}{
			"full_name":  "Ada Lovelace",
			"email":      "ada@example.com",
			"subscribed": true,
			"budget":     float64(12),
		})
		assert.Nil(t, errs)
	})
}

func TestValidationErrorsError(t *testing.T) {
	errs := campaign.ValidationErrors{"email": "bad", "name": "missing"}
	assert.Contains(t, errs.Error(), "2 field(s)")
}
