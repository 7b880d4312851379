package testimonial_test

import (
	"fmt"
	"testing"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestTestimonialHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role.Name)

	database.DB.Create(&models.Testimonial{Author: "Happy Client", Quote: "Great work", Approved: true, Order: 1})
	database.DB.Create(&models.Testimonial{Author: "Pending Client", Quote: "Not reviewed yet", Approved: false, Order: 2})

	t.Run("Success - Public list is approved only", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/testimonials", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)

		data := result.Data.([]interface{})
		assert.Len(t, data, 1)
		assert.Equal(t, "Happy Client", data[0].(map[string]interface{})["author"])
	})

	t.Run("Success - Create strips markup from the quote", func(t *testing.T) {
		rating := 5
		body := map[string]interface{}{
			"author": "New Client",
			"quote":  `<b>Amazing</b> team`,
			"rating": rating,
		}

		resp, err := testutils.MakeRequest(app, "POST", "/admin/testimonials", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)

		data := result.Data.(map[string]interface{})
		assert.Equal(t, "Amazing team", data["quote"])
		assert.Equal(t, false, data["approved"])
	})

	t.Run("Error - Rating out of range", func(t *testing.T) {
		body := map[string]interface{}{
			"author": "Overexcited",
			"quote":  "11 out of 10",
			"rating": 11,
		}

		resp, err := testutils.MakeRequest(app, "POST", "/admin/testimonials", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "VALIDATION_FAILED")
	})

	t.Run("Success - Approve via update", func(t *testing.T) {
		var item models.Testimonial
		database.DB.Where("author = ?", "Pending Client").First(&item)

		body := map[string]interface{}{
			"author":   item.Author,
			"quote":    item.Quote,
			"order":    item.Order,
			"approved": true,
		}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/admin/testimonials/%d", item.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var fresh models.Testimonial
		database.DB.First(&fresh, item.ID)
		assert.True(t, fresh.Approved)
	})

	t.Run("Error - Not found", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", "/admin/testimonials/9999", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})
}
