package media_test

import (
	"fmt"
	"testing"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestUploadMediaHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role.Name)

	t.Run("Success - Upload stores metadata", func(t *testing.T) {
		files := map[string][]byte{"file": []byte("fake image bytes")}

		resp, err := testutils.MakeMultipartRequestWithFile(app, "POST", "/admin/media/upload", map[string]string{"alt": "Team photo"}, files, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.True(t, result.Success)

		data := result.Data.(map[string]interface{})
		assert.NotEmpty(t, data["url"])
		assert.Equal(t, "Team photo", data["alt"])
		assert.Equal(t, float64(admin.ID), data["uploaded_by"])
	})

	t.Run("Error - Missing file", func(t *testing.T) {
		resp, err := testutils.MakeMultipartRequestWithFile(app, "POST", "/admin/media/upload", nil, nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "BAD_REQUEST")
	})

	t.Run("Error - Unauthorized", func(t *testing.T) {
		files := map[string][]byte{"file": []byte("bytes")}

		resp, err := testutils.MakeMultipartRequestWithFile(app, "POST", "/admin/media/upload", nil, files, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})
}

func TestListAndDeleteMediaHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role.Name)

	database.DB.Create(&models.MediaFile{FileName: "a.jpg", URL: "/uploads/images/a.jpg", Type: "image/jpeg", Size: 100, UploadedBy: admin.ID})
	database.DB.Create(&models.MediaFile{FileName: "b.mp4", URL: "/uploads/videos/b.mp4", Type: "video/mp4", Size: 2000, UploadedBy: admin.ID})

	t.Run("Success - Filter by type", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/admin/media?type=image", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)

		data := result.Data.([]interface{})
		assert.Len(t, data, 1)
		assert.Equal(t, "a.jpg", data[0].(map[string]interface{})["file_name"])
	})

	t.Run("Success - Delete removes the row even if the file is gone", func(t *testing.T) {
		var mf models.MediaFile
		database.DB.Where("file_name = ?", "b.mp4").First(&mf)

		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/admin/media/%d", mf.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)

		var count int64
		database.DB.Model(&models.MediaFile{}).Where("id = ?", mf.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}
