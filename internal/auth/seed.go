package auth

import (
	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
)

// SeedDefaultRoles makes sure the two dashboard roles exist. Editors manage
// content; admins additionally manage users and read submissions.
func SeedDefaultRoles() error {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "editor", Description: "Editor - can create and edit content"},
	}

	for _, r := range roles {
		var existing models.Role
		if err := database.DB.Where("name = ?", r.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&r).Error; err != nil {
			return err
		}
	}

	return nil
}
