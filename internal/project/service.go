package project

import (
	"errors"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/utils"
	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ImageInput struct {
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Order *int   `json:"order"` // nil falls back to list position
}

type ProjectInput struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	Client      string       `json:"client"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	HeroImage   string       `json:"hero_image"`
	Featured    bool         `json:"featured"`
	Published   bool         `json:"published"`
	Images      []ImageInput `json:"images"`
}

func GetPublishedBySlug(slug string) (*models.Project, error) {
	var p models.Project
	err := database.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Where("slug = ? AND published = ?", slug, true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func ListPublished(category string, featuredOnly bool) ([]models.Project, error) {
	query := database.DB.Where("published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	var projects []models.Project
	err := query.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func buildImages(projectID uint, inputs []ImageInput) []models.ProjectImage {
	images := make([]models.ProjectImage, 0, len(inputs))
	for i, in := range inputs {
		order := i
		if in.Order != nil {
			order = *in.Order
		}
		images = append(images, models.ProjectImage{
			ProjectID: projectID,
			URL:       in.URL,
			Alt:       in.Alt,
			Order:     order,
		})
	}
	return images
}

func CreateProject(in *ProjectInput) (*models.Project, error) {
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Title)
	}

	p := models.Project{
		Slug:        in.Slug,
		Title:       in.Title,
		Category:    in.Category,
		Client:      in.Client,
		Description: in.Description,
		Content:     in.Content,
		HeroImage:   in.HeroImage,
		Featured:    in.Featured,
		Published:   in.Published,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if images := buildImages(p.ID, in.Images); len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	database.DB.Preload("Images").First(&p, p.ID)
	return &p, nil
}

// UpdateProject swaps the gallery atomically, same discipline as campaign
// CTA replacement.
func UpdateProject(id uint, in *ProjectInput) (*models.Project, error) {
	var p models.Project
	if err := database.DB.First(&p, id).Error; err != nil {
		return nil, ErrProjectNotFound
	}

	p.Slug = in.Slug
	p.Title = in.Title
	p.Category = in.Category
	p.Client = in.Client
	p.Description = in.Description
	p.Content = in.Content
	p.HeroImage = in.HeroImage
	p.Featured = in.Featured
	p.Published = in.Published

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Save(&p).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		if images := buildImages(id, in.Images); len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	database.DB.Preload("Images").First(&p, id)
	return &p, nil
}

// DeleteProject cascades to the gallery in one transaction.
func DeleteProject(id uint) error {
	var p models.Project
	if err := database.DB.First(&p, id).Error; err != nil {
		return ErrProjectNotFound
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}
