package contact_test

import (
	"fmt"
	"testing"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestSubmitContactHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	t.Run("Success - Message stored with sender IP", func(t *testing.T) {
		body := map[string]interface{}{
			"name":    "Potential Client",
			"email":   "client@example.com",
			"subject": "Project inquiry",
			"message": "We need a brand refresh.",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/contact", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.True(t, result.Success)

		id := uint(result.Data.(map[string]interface{})["message_id"].(float64))
		var msg models.ContactMessage
		assert.NoError(t, database.DB.First(&msg, id).Error)
		assert.Equal(t, "client@example.com", msg.Email)
		assert.NotEmpty(t, msg.IPAddress)
		assert.False(t, msg.Read)
	})

	t.Run("Success - Markup stripped from message", func(t *testing.T) {
		body := map[string]interface{}{
			"name":    "Spammy",
			"email":   "spam@example.com",
			"message": `<script>alert(1)</script>Hello there`,
		}

		resp, err := testutils.MakeRequest(app, "POST", "/contact", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		id := uint(result.Data.(map[string]interface{})["message_id"].(float64))

		var msg models.ContactMessage
		database.DB.First(&msg, id)
		assert.NotContains(t, msg.Message, "<script>")
		assert.Contains(t, msg.Message, "Hello there")
	})

	t.Run("Error - Missing fields reported per field", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/contact", map[string]interface{}{}, "")
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Equal(t, "VALIDATION_FAILED", result.Error.Code)

		details := result.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "name")
		assert.Contains(t, details, "email")
		assert.Contains(t, details, "message")
	})

	t.Run("Error - Malformed email", func(t *testing.T) {
		body := map[string]interface{}{
			"name":    "Typo",
			"email":   "typo.example.com",
			"message": "hi",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/contact", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "VALIDATION_FAILED")
	})
}

func TestContactRateLimit(t *testing.T) {
	app := testutils.SetupTestApp(t)

	body := map[string]interface{}{
		"name":    "Persistent",
		"email":   "persistent@example.com",
		"message": "hello again",
	}

	for i := 0; i < 5; i++ {
		resp, err := testutils.MakeRequest(app, "POST", "/contact", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)
	}

	resp, err := testutils.MakeRequest(app, "POST", "/contact", body, "")
	assert.NoError(t, err)
	assert.Equal(t, 429, resp.Code)

	testutils.AssertError(t, resp, "TOO_MANY_REQUESTS")
}

func TestContactInboxHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role.Name)

	for i := 0; i < 3; i++ {
		database.DB.Create(&models.ContactMessage{
			Name:    fmt.Sprintf("Sender %d", i),
			Email:   fmt.Sprintf("sender%d@example.com", i),
			Message: "hello",
		})
	}

	t.Run("Success - Paginated inbox", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/admin/contacts?page=1&limit=2", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)

		assert.Len(t, result.Data.([]interface{}), 2)
		assert.Equal(t, int64(3), result.Meta.Total)
		assert.Equal(t, int64(2), result.Meta.TotalPages)
	})

	t.Run("Success - Mark read and filter unread", func(t *testing.T) {
		var msg models.ContactMessage
		database.DB.First(&msg)

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/admin/contacts/%d/read", msg.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		list, err := testutils.MakeRequest(app, "GET", "/admin/contacts?read=false", nil, token)
		assert.NoError(t, err)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, list, &result)
		assert.Len(t, result.Data.([]interface{}), 2)
	})

	t.Run("Success - Delete message", func(t *testing.T) {
		var msg models.ContactMessage
		database.DB.First(&msg)

		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/admin/contacts/%d", msg.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)
	})

	t.Run("Error - Unauthorized", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/admin/contacts", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})
}
