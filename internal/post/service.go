package post

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostInput struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

func GetPublishedBySlug(slug string) (*models.Post, error) {
	var p models.Post
	err := database.DB.
		Preload("Author").
		Where("slug = ? AND published = ?", slug, true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func ListPublished(page, limit int) ([]models.Post, int64, error) {
	query := database.DB.Model(&models.Post{}).Where("published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.
		Order("published_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func CreatePost(authorID uint, in *PostInput) (*models.Post, error) {
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Title)
	}

	p := models.Post{
		Slug:       in.Slug,
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		Published:  in.Published,
		AuthorID:   authorID,
	}

	if len(in.Tags) > 0 {
		tags, _ := json.Marshal(in.Tags)
		p.Tags = datatypes.JSON(tags)
	}

	if in.Published {
		now := time.Now()
		p.PublishedAt = &now
	}

	if err := database.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func UpdatePost(id uint, in *PostInput) (*models.Post, error) {
	var p models.Post
	if err := database.DB.First(&p, id).Error; err != nil {
		return nil, ErrPostNotFound
	}

	wasPublished := p.Published

	p.Slug = in.Slug
	p.Title = in.Title
	p.Excerpt = in.Excerpt
	p.Content = in.Content
	p.CoverImage = in.CoverImage
	p.Published = in.Published

	if len(in.Tags) > 0 {
		tags, _ := json.Marshal(in.Tags)
		p.Tags = datatypes.JSON(tags)
	}

	if in.Published && !wasPublished {
		now := time.Now()
		p.PublishedAt = &now
	}

	if err := database.DB.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
