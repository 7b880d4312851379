package services

import (
	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/SakibBhai/zoolyum-backend/internal/utils"
	"github.com/gofiber/fiber/v2"
)

type serviceRequest struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active"`
}

// ListServicesHandler is public: active offerings in display order.
func ListServicesHandler(c *fiber.Ctx) error {
	var items []models.Service
	err := database.DB.
		Where("active = ?", true).
		Order("\"order\" ASC").
		Find(&items).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch services")
	}

	return response.Success(c, items, "Services retrieved successfully")
}

func ListAllServicesHandler(c *fiber.Ctx) error {
	var items []models.Service
	if err := database.DB.Order("\"order\" ASC").Find(&items).Error; err != nil {
		return response.InternalError(c, "Failed to fetch services")
	}

	return response.Success(c, items, "Services retrieved successfully")
}

func CreateServiceHandler(c *fiber.Ctx) error {
	var body serviceRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name == "" {
		return response.ValidationFailed(c, map[string]string{"name": "name is required"})
	}
	if body.Slug == "" {
		body.Slug = utils.Slugify(body.Name)
	}

	item := models.Service{
		Slug:        body.Slug,
		Name:        body.Name,
		Summary:     body.Summary,
		Description: body.Description,
		Icon:        body.Icon,
		Order:       body.Order,
		Active:      true,
	}
	if body.Active != nil {
		item.Active = *body.Active
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return response.InternalError(c, "Failed to create service")
	}

	return response.Created(c, item, "Service created successfully")
}

func UpdateServiceHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid service ID", nil)
	}

	var item models.Service
	if err := database.DB.First(&item, id).Error; err != nil {
		return response.NotFound(c, "Service")
	}

	var body serviceRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	item.Slug = body.Slug
	item.Name = body.Name
	item.Summary = body.Summary
	item.Description = body.Description
	item.Icon = body.Icon
	item.Order = body.Order
	if body.Active != nil {
		item.Active = *body.Active
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return response.InternalError(c, "Failed to update service")
	}

	return response.Success(c, item, "Service updated successfully")
}

func DeleteServiceHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid service ID", nil)
	}

	var item models.Service
	if err := database.DB.First(&item, id).Error; err != nil {
		return response.NotFound(c, "Service")
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return response.InternalError(c, "Failed to delete service")
	}

	return response.NoContent(c)
}
