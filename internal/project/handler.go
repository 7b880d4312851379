package project

import (
	"errors"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// ListProjectsHandler is public: published projects, optionally filtered by
// ?category= and ?featured=true.
func ListProjectsHandler(c *fiber.Ctx) error {
	projects, err := ListPublished(c.Query("category"), c.Query("featured") == "true")
	if err != nil {
		return response.InternalError(c, "Failed to fetch projects")
	}

	return response.Success(c, projects, "Projects retrieved successfully")
}

func GetProjectBySlugHandler(c *fiber.Ctx) error {
	p, err := GetPublishedBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return response.NotFound(c, "Project")
		}
		return response.InternalError(c, "Failed to fetch project")
	}

	return response.Success(c, p, "Project retrieved successfully")
}

func ListAllProjectsHandler(c *fiber.Ctx) error {
	var projects []models.Project
	if err := database.DB.Preload("Images").Order("created_at DESC").Find(&projects).Error; err != nil {
		return response.InternalError(c, "Failed to fetch projects")
	}

	return response.Success(c, projects, "Projects retrieved successfully")
}

func CreateProjectHandler(c *fiber.Ctx) error {
	var body ProjectInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Title == "" {
		return response.ValidationFailed(c, map[string]string{"title": "title is required"})
	}

	body.Content = policy.Sanitize(body.Content)

	p, err := CreateProject(&body)
	if err != nil {
		return response.InternalError(c, "Failed to create project")
	}

	return response.Created(c, p, "Project created successfully")
}

func UpdateProjectHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID", nil)
	}

	var body ProjectInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	body.Content = policy.Sanitize(body.Content)

	p, err := UpdateProject(uint(id), &body)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return response.NotFound(c, "Project")
		}
		return response.InternalError(c, "Failed to update project")
	}

	return response.Success(c, p, "Project updated successfully")
}

func DeleteProjectHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID", nil)
	}

	if err := DeleteProject(uint(id)); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return response.NotFound(c, "Project")
		}
		return response.InternalError(c, "Failed to delete project")
	}

	return response.NoContent(c)
}
