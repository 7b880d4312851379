package team

import (
	"encoding/json"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type memberRequest struct {
	Name      string            `json:"name"`
	RoleTitle string            `json:"role_title"`
	Bio       string            `json:"bio"`
	Photo     string            `json:"photo"`
	Socials   map[string]string `json:"socials"`
	Order     int               `json:"order"`
	Active    *bool             `json:"active"`
}

func ListTeamHandler(c *fiber.Ctx) error {
	var members []models.TeamMember
	err := database.DB.
		Where("active = ?", true).
		Order("\"order\" ASC").
		Find(&members).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch team members")
	}

	return response.Success(c, members, "Team members retrieved successfully")
}

func ListAllTeamHandler(c *fiber.Ctx) error {
	var members []models.TeamMember
	if err := database.DB.Order("\"order\" ASC").Find(&members).Error; err != nil {
		return response.InternalError(c, "Failed to fetch team members")
	}

	return response.Success(c, members, "Team members retrieved successfully")
}

func CreateMemberHandler(c *fiber.Ctx) error {
	var body memberRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name == "" || body.RoleTitle == "" {
		return response.ValidationFailed(c, map[string]string{
			"name":       "name is required",
			"role_title": "role_title is required",
		})
	}

	member := models.TeamMember{
		Name:      body.Name,
		RoleTitle: body.RoleTitle,
		Bio:       body.Bio,
		Photo:     body.Photo,
		Order:     body.Order,
		Active:    true,
	}
	if body.Active != nil {
		member.Active = *body.Active
	}
	if len(body.Socials) > 0 {
		socials, _ := json.Marshal(body.Socials)
		member.Socials = datatypes.JSON(socials)
	}

	if err := database.DB.Create(&member).Error; err != nil {
		return response.InternalError(c, "Failed to create team member")
	}

	return response.Created(c, member, "Team member created successfully")
}

func UpdateMemberHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid team member ID", nil)
	}

	var member models.TeamMember
	if err := database.DB.First(&member, id).Error; err != nil {
		return response.NotFound(c, "Team member")
	}

	var body memberRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	member.Name = body.Name
	member.RoleTitle = body.RoleTitle
	member.Bio = body.Bio
	member.Photo = body.Photo
	member.Order = body.Order
	if body.Active != nil {
		member.Active = *body.Active
	}
	if len(body.Socials) > 0 {
		socials, _ := json.Marshal(body.Socials)
		member.Socials = datatypes.JSON(socials)
	}

	if err := database.DB.Save(&member).Error; err != nil {
		return response.InternalError(c, "Failed to update team member")
	}

	return response.Success(c, member, "Team member updated successfully")
}

func DeleteMemberHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid team member ID", nil)
	}

	var member models.TeamMember
	if err := database.DB.First(&member, id).Error; err != nil {
		return response.NotFound(c, "Team member")
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		return response.InternalError(c, "Failed to delete team member")
	}

	return response.NoContent(c)
}
