package database

import (
	"fmt"
	"log"

	"github.com/SakibBhai/zoolyum-backend/internal/config"
	"github.com/SakibBhai/zoolyum-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	DB = db

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := models.EnsureCampaignEnum(db); err != nil {
		log.Fatal("failed to create enum:", err)
	}
	err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.RefreshToken{},
		&models.Campaign{},
		&models.CampaignField{},
		&models.CampaignCTA{},
		&models.CampaignSubmission{},
		&models.Post{},
		&models.Project{},
		&models.ProjectImage{},
		&models.Service{},
		&models.TeamMember{},
		&models.Testimonial{},
		&models.ContactMessage{},
		&models.MediaFile{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database migrated successfully!")
	return nil
}
