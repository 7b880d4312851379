package contact

import (
	"regexp"

	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     = bluemonday.StrictPolicy()
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContactHandler is the public contact form entry point.
func SubmitContactHandler(c *fiber.Ctx) error {
	var body contactRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	errs := map[string]string{}
	if body.Name == "" {
		errs["name"] = "name is required"
	}
	if body.Email == "" {
		errs["email"] = "email is required"
	} else if !emailRegex.MatchString(body.Email) {
		errs["email"] = "email must be a valid email address"
	}
	if body.Message == "" {
		errs["message"] = "message is required"
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	msg := models.ContactMessage{
		Name:      policy.Sanitize(body.Name),
		Email:     body.Email,
		Subject:   policy.Sanitize(body.Subject),
		Message:   policy.Sanitize(body.Message),
		IPAddress: c.IP(),
	}

	if err := database.DB.Create(&msg).Error; err != nil {
		return response.InternalError(c, "Failed to save message")
	}

	return response.Created(c, fiber.Map{"message_id": msg.ID}, "Message received, we will get back to you soon")
}

// ListContactsHandler is the admin inbox: paginated, newest first,
// optional ?read= filter.
func ListContactsHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := database.DB.Model(&models.ContactMessage{})
	if read := c.Query("read"); read != "" {
		query = query.Where("read = ?", read == "true")
	}

	var total int64
	query.Count(&total)

	var messages []models.ContactMessage
	query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages)

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, messages, meta, "Messages retrieved successfully")
}

func MarkContactReadHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid message ID", nil)
	}

	var msg models.ContactMessage
	if err := database.DB.First(&msg, id).Error; err != nil {
		return response.NotFound(c, "Message")
	}

	msg.Read = true
	if err := database.DB.Save(&msg).Error; err != nil {
		return response.InternalError(c, "Failed to update message")
	}

	return response.Success(c, msg, "Message marked as read")
}

func DeleteContactHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid message ID", nil)
	}

	var msg models.ContactMessage
	if err := database.DB.First(&msg, id).Error; err != nil {
		return response.NotFound(c, "Message")
	}

	if err := database.DB.Delete(&msg).Error; err != nil {
		return response.InternalError(c, "Failed to delete message")
	}

	return response.NoContent(c)
}
