package post

import (
	"errors"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// ListPostsHandler is public: published posts only, newest first.
func ListPostsHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	posts, total, err := ListPublished(page, limit)
	if err != nil {
		return response.InternalError(c, "Failed to fetch posts")
	}

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, posts, meta, "Posts retrieved successfully")
}

func GetPostBySlugHandler(c *fiber.Ctx) error {
	p, err := GetPublishedBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return response.NotFound(c, "Post")
		}
		return response.InternalError(c, "Failed to fetch post")
	}

	return response.Success(c, p, "Post retrieved successfully")
}

// ListAllPostsHandler is the admin table: drafts included.
func ListAllPostsHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := database.DB.Model(&models.Post{})
	if published := c.Query("published"); published != "" {
		query = query.Where("published = ?", published == "true")
	}

	var total int64
	query.Count(&total)

	var posts []models.Post
	query.Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts)

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, posts, meta, "Posts retrieved successfully")
}

func CreatePostHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body PostInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Title == "" {
		return response.ValidationFailed(c, map[string]string{"title": "title is required"})
	}

	body.Content = policy.Sanitize(body.Content)

	p, err := CreatePost(userID, &body)
	if err != nil {
		return response.InternalError(c, "Failed to create post")
	}

	return response.Created(c, p, "Post created successfully")
}

func UpdatePostHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post ID", nil)
	}

	var body PostInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	body.Content = policy.Sanitize(body.Content)

	p, err := UpdatePost(uint(id), &body)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return response.NotFound(c, "Post")
		}
		return response.InternalError(c, "Failed to update post")
	}

	return response.Success(c, p, "Post updated successfully")
}

func DeletePostHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post ID", nil)
	}

	var p models.Post
	if err := database.DB.First(&p, id).Error; err != nil {
		return response.NotFound(c, "Post")
	}

	if err := database.DB.Delete(&p).Error; err != nil {
		return response.InternalError(c, "Failed to delete post")
	}

	return response.NoContent(c)
}
