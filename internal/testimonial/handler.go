package testimonial

import (
	"github.com/SakibBhai/zoolyum-backend/internal/database"
	"github.com/SakibBhai/zoolyum-backend/internal/models"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

type testimonialRequest struct {
	Author   string `json:"author"`
	Company  string `json:"company"`
	Quote    string `json:"quote"`
	Rating   *int   `json:"rating"`
	Approved *bool  `json:"approved"`
	Order    int    `json:"order"`
}

// ListTestimonialsHandler is public: approved quotes only.
func ListTestimonialsHandler(c *fiber.Ctx) error {
	var items []models.Testimonial
	err := database.DB.
		Where("approved = ?", true).
		Order("\"order\" ASC").
		Find(&items).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch testimonials")
	}

	return response.Success(c, items, "Testimonials retrieved successfully")
}

func ListAllTestimonialsHandler(c *fiber.Ctx) error {
	var items []models.Testimonial
	if err := database.DB.Order("\"order\" ASC").Find(&items).Error; err != nil {
		return response.InternalError(c, "Failed to fetch testimonials")
	}

	return response.Success(c, items, "Testimonials retrieved successfully")
}

func CreateTestimonialHandler(c *fiber.Ctx) error {
	var body testimonialRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Author == "" || body.Quote == "" {
		return response.ValidationFailed(c, map[string]string{
			"author": "author is required",
			"quote":  "quote is required",
		})
	}

	if body.Rating != nil && (*body.Rating < 1 || *body.Rating > 5) {
		return response.ValidationFailed(c, map[string]string{"rating": "rating must be between 1 and 5"})
	}

	item := models.Testimonial{
		Author:  body.Author,
		Company: body.Company,
		Quote:   policy.Sanitize(body.Quote),
		Rating:  body.Rating,
		Order:   body.Order,
	}
	if body.Approved != nil {
		item.Approved = *body.Approved
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return response.InternalError(c, "Failed to create testimonial")
	}

	return response.Created(c, item, "Testimonial created successfully")
}

func UpdateTestimonialHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid testimonial ID", nil)
	}

	var item models.Testimonial
	if err := database.DB.First(&item, id).Error; err != nil {
		return response.NotFound(c, "Testimonial")
	}

	var body testimonialRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Rating != nil && (*body.Rating < 1 || *body.Rating > 5) {
		return response.ValidationFailed(c, map[string]string{"rating": "rating must be between 1 and 5"})
	}

	item.Author = body.Author
	item.Company = body.Company
	item.Quote = policy.Sanitize(body.Quote)
	item.Rating = body.Rating
	item.Order = body.Order
	if body.Approved != nil {
		item.Approved = *body.Approved
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return response.InternalError(c, "Failed to update testimonial")
	}

	return response.Success(c, item, "Testimonial updated successfully")
}

func DeleteTestimonialHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid testimonial ID", nil)
	}

	var item models.Testimonial
	if err := database.DB.First(&item, id).Error; err != nil {
		return response.NotFound(c, "Testimonial")
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return response.InternalError(c, "Failed to delete testimonial")
	}

	return response.NoContent(c)
}
