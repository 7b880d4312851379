package auth

import (
	"fmt"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/utils"
)

func LoginUser(email, password string) (string, string, error) {
	var user models.User
	if err := database.DB.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return "", "", err
	}

	if user.Status != "active" {
		return "", "", fmt.Errorf("account disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", "", fmt.Errorf("invalid credentials")
	}

	accessToken, err := utils.GenerateJWT(user.ID, user.Role.Name)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func GetDefaultEditorRoleID() (uint, error) {
	var role models.Role
	if err := database.DB.Where("name = ?", "editor").First(&role).Error; err != nil {
		return 0, err
	}
	if role.ID == 0 {
		return 0, fmt.Errorf("editor role found but ID is 0")
	}
	return role.ID, nil
}
