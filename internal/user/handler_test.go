package user_test

import (
	"fmt"
	"testing"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestUserHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role.Name)

	t.Run("Success - Create editor by default", func(t *testing.T) {
		body := map[string]interface{}{
			"name":     "New Editor",
			"email":    "new@test.com",
			"password": "secret123",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/admin/users/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)

		data := result.Data.(map[string]interface{})
		role := data["role"].(map[string]interface{})
		assert.Equal(t, "editor", role["name"])
	})

	t.Run("Error - Duplicate email", func(t *testing.T) {
		body := map[string]interface{}{
			"name":     "Clone",
			"email":    "new@test.com",
			"password": "secret123",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/admin/users/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("Error - Unknown role", func(t *testing.T) {
		body := map[string]interface{}{
			"name":     "Mystery",
			"email":    "mystery@test.com",
			"password": "secret123",
			"role":     "superuser",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/admin/users/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "VALIDATION_FAILED")
	})

	t.Run("Success - Promote editor to admin", func(t *testing.T) {
		var u models.User
		database.DB.Where("email = ?", "new@test.com").First(&u)

		body := map[string]interface{}{"role": "admin"}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/admin/users/%d", u.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var fresh models.User
		database.DB.Preload("Role").First(&fresh, u.ID)
		assert.Equal(t, "admin", fresh.Role.Name)
	})

	t.Run("Error - Cannot delete own account", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/admin/users/%d", admin.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("Success - Delete another user", func(t *testing.T) {
		var u models.User
		database.DB.Where("email = ?", "new@test.com").First(&u)

		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/admin/users/%d", u.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)
	})
}
