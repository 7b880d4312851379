package post_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func seedPost(t *testing.T, authorID uint, slug string, published bool) *models.Post {
	p := &models.Post{
		Slug:      slug,
		Title:     "Post " + slug,
		Content:   "<p>Body</p>",
		Published: published,
		AuthorID:  authorID,
	}
	if published {
		now := time.Now()
		p.PublishedAt = &now
	}
	assert.NoError(t, database.DB.Create(p).Error)
	return p
}

func TestPublicPostHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	author := testutils.CreateTestUser(t, database.DB, "writer@test.com", "password", "editor")
	seedPost(t, author.ID, "hello-world", true)
	seedPost(t, author.ID, "work-in-progress", false)

	t.Run("Success - List shows only published posts", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/posts/", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Len(t, result.Data.([]interface{}), 1)
		assert.Equal(t, int64(1), result.Meta.Total)
	})

	t.Run("Success - Published slug resolves", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/posts/slug/hello-world", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		testutils.AssertSuccess(t, resp)
	})

	t.Run("Error - Draft slug is invisible", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/posts/slug/work-in-progress", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)

		testutils.AssertError(t, resp, "NOT_FOUND")
	})
}

func TestAdminPostHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role.Name)

	t.Run("Success - Create derives slug from title", func(t *testing.T) {
		body := map[string]interface{}{
			"title":     "Design Trends 2026",
			"content":   "<p>Bold typography</p>",
			"tags":      []string{"design", "trends"},
			"published": true,
		}

		resp, err := testutils.MakeRequest(app, "POST", "/admin/posts", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)

		data := result.Data.(map[string]interface{})
		assert.Equal(t, "design-trends-2026", data["slug"])
		assert.NotNil(t, data["published_at"])
	})

	t.Run("Success - Publishing a draft stamps published_at", func(t *testing.T) {
		draft := seedPost(t, admin.ID, "slow-burn", false)
		assert.Nil(t, draft.PublishedAt)

		body := map[string]interface{}{
			"slug":      "slow-burn",
			"title":     "Slow Burn",
			"published": true,
		}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/admin/posts/%d", draft.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var fresh models.Post
		database.DB.First(&fresh, draft.ID)
		assert.True(t, fresh.Published)
		assert.NotNil(t, fresh.PublishedAt)
	})

	t.Run("Success - Admin list includes drafts", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/admin/posts", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Equal(t, int64(2), result.Meta.Total)
	})

	t.Run("Error - Missing title", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/admin/posts", map[string]interface{}{}, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "VALIDATION_FAILED")
	})

	t.Run("Success - Delete", func(t *testing.T) {
		p := seedPost(t, admin.ID, "doomed", false)

		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/admin/posts/%d", p.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)
	})
}
