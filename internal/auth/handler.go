package auth

import (
	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/SakibBhai/zoolyum-backend/internal/utils"
	"github.com/gofiber/fiber/v2"
)

func LoginHandler(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" || body.Password == "" {
		return response.ValidationFailed(c, map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
	}

	accessToken, refreshToken, err := LoginUser(body.Email, body.Password)
	if err != nil {
		return response.Unauthorized(c, "Invalid email or password")
	}

	return response.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    900,
	}, "Login successful")
}

func RefreshHandler(c *fiber.Ctx) error {
	var body struct {
		UserID       uint   `json:"user_id"`
		RefreshToken string `json:"refresh_token"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.UserID == 0 || body.RefreshToken == "" {
		return response.ValidationFailed(c, map[string]string{
			"user_id":       "user_id is required",
			"refresh_token": "refresh_token is required",
		})
	}

	accessToken, refreshToken, err := utils.RefreshTokenPair(body.UserID, body.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, "Invalid or expired refresh token")
	}

	return response.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    900,
	}, "Token refreshed")
}

func LogoutHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	database.DB.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = false", userID).
		Update("revoked", true)

	return response.Success(c, nil, "Logged out")
}

func MeHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var u models.User
	if err := database.DB.Preload("Role").First(&u, userID).Error; err != nil {
		return response.NotFound(c, "User")
	}

	return response.Success(c, u, "Profile retrieved")
}
