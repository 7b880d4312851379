package user

import (
	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/SakibBhai/zoolyum-backend/internal/utils"
	"github.com/gofiber/fiber/v2"
)

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func ListUsersHandler(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Preload("Role").Order("created_at DESC").Find(&users).Error; err != nil {
		return response.InternalError(c, "Failed to fetch users")
	}

	return response.Success(c, users, "Users retrieved successfully")
}

func GetUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var u models.User
	if err := database.DB.Preload("Role").First(&u, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	return response.Success(c, u, "User retrieved successfully")
}

func CreateUserHandler(c *fiber.Ctx) error {
	var body userRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name == "" || body.Email == "" || body.Password == "" {
		return response.ValidationFailed(c, map[string]string{
			"name":     "name is required",
			"email":    "email is required",
			"password": "password is required",
		})
	}

	var existing models.User
	if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
		return response.Conflict(c, "Email already registered")
	}

	if body.Role == "" {
		body.Role = "editor"
	}
	var role models.Role
	if err := database.DB.Where("name = ?", body.Role).First(&role).Error; err != nil {
		return response.ValidationFailed(c, map[string]string{"role": "unknown role"})
	}

	hashedPassword, err := utils.HashPassword(body.Password)
	if err != nil {
		return response.InternalError(c, "Failed to hash password")
	}

	u := models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: hashedPassword,
		Provider: "local",
		Status:   "active",
		RoleID:   role.ID,
	}

	if err := database.DB.Create(&u).Error; err != nil {
		return response.InternalError(c, "Failed to create user")
	}

	database.DB.Preload("Role").First(&u, u.ID)

	return response.Created(c, u, "User created successfully")
}

func UpdateUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var u models.User
	if err := database.DB.First(&u, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	var body userRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name != "" {
		u.Name = body.Name
	}
	if body.Status != "" {
		u.Status = body.Status
	}
	if body.Password != "" {
		hashedPassword, err := utils.HashPassword(body.Password)
		if err != nil {
			return response.InternalError(c, "Failed to hash password")
		}
		u.Password = hashedPassword
	}
	if body.Role != "" {
		var role models.Role
		if err := database.DB.Where("name = ?", body.Role).First(&role).Error; err != nil {
			return response.ValidationFailed(c, map[string]string{"role": "unknown role"})
		}
		u.RoleID = role.ID
	}

	if err := database.DB.Save(&u).Error; err != nil {
		return response.InternalError(c, "Failed to update user")
	}

	database.DB.Preload("Role").First(&u, u.ID)

	return response.Success(c, u, "User updated successfully")
}

func DeleteUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	requesterID := c.Locals("user_id").(uint)
	if uint(id) == requesterID {
		return response.Conflict(c, "Cannot delete your own account")
	}

	var u models.User
	if err := database.DB.First(&u, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	if err := database.DB.Delete(&u).Error; err != nil {
		return response.InternalError(c, "Failed to delete user")
	}

	return response.NoContent(c)
}
