package media

import (
	"log"
	"strings"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/SakibBhai/zoolyum-backend/internal/utils"
	"github.com/gofiber/fiber/v2"
)

func UploadMediaHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required", nil)
	}

	maxSize := int64(10 * 1024 * 1024) // 10MB
	if strings.HasPrefix(file.Header.Get("Content-Type"), "video/") {
		maxSize = int64(100 * 1024 * 1024) // 100MB for videos
	}

	if file.Size > maxSize {
		return response.BadRequest(c, "File too large", map[string]interface{}{
			"max_size_mb":  maxSize / (1024 * 1024),
			"file_size_mb": file.Size / (1024 * 1024),
		})
	}

	url, err := utils.UploadFile(file)
	if err != nil {
		return response.InternalError(c, "Failed to upload file: "+err.Error())
	}

	mediaFile := models.MediaFile{
		FileName:   file.Filename,
		URL:        url,
		Type:       file.Header.Get("Content-Type"),
		Size:       file.Size,
		Alt:        c.FormValue("alt", ""),
		UploadedBy: userID,
	}

	if err := database.DB.Create(&mediaFile).Error; err != nil {
		utils.DeleteFile(url)
		return response.InternalError(c, "Failed to save media metadata")
	}

	return response.Created(c, mediaFile, "Media uploaded successfully")
}

func ListMediaHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := database.DB.Model(&models.MediaFile{})

	if mediaType := c.Query("type"); mediaType != "" {
		query = query.Where("type LIKE ?", mediaType+"%")
	}

	var total int64
	query.Count(&total)

	var files []models.MediaFile
	query.Preload("Uploader").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&files)

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, files, meta, "Media files retrieved successfully")
}

func DeleteMediaHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid media ID", nil)
	}

	var mediaFile models.MediaFile
	if err := database.DB.First(&mediaFile, id).Error; err != nil {
		return response.NotFound(c, "Media")
	}

	if err := utils.DeleteFile(mediaFile.URL); err != nil {
		log.Printf("⚠️  Failed to remove stored file %s: %v", mediaFile.URL, err)
	}

	if err := database.DB.Delete(&mediaFile).Error; err != nil {
		return response.InternalError(c, "Failed to delete media")
	}

	return response.NoContent(c)
}
