package campaign

import (
	"errors"

	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

type submitRequest struct {
	FormData map[string]interface{} `json:"formData"`
}

// ListCampaignsHandler is public: summaries only, optional ?status= filter.
func ListCampaignsHandler(c *fiber.Ctx) error {
	status := c.Query("status")

	summaries, err := ListCampaigns(status)
	if err != nil {
		return response.InternalError(c, "Failed to fetch campaigns")
	}

	return response.Success(c, summaries, "Campaigns retrieved successfully")
}

// GetCampaignBySlugHandler serves the public campaign page payload: full
// record with form schema and CTAs, published campaigns only.
func GetCampaignBySlugHandler(c *fiber.Ctx) error {
	slug := c.Params("slug")

	cmp, err := GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return response.NotFound(c, "Campaign")
		}
		return response.InternalError(c, "Failed to fetch campaign")
	}

	return response.Success(c, cmp, "Campaign retrieved successfully")
}

// GetCampaignHandler is the admin detail view; any status.
func GetCampaignHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid campaign ID", nil)
	}

	cmp, err := GetByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return response.NotFound(c, "Campaign")
		}
		return response.InternalError(c, "Failed to fetch campaign")
	}

	return response.Success(c, cmp, "Campaign retrieved successfully")
}

func CreateSubmissionHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid campaign ID", nil)
	}

	var body submitRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid JSON payload", err.Error())
	}
	if body.FormData == nil {
		body.FormData = map[string]interface{}{}
	}

	meta := SubmissionMeta{
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}

	sub, cmp, err := CreateSubmission(uint(id), body.FormData, meta)
	if err != nil {
		var verrs ValidationErrors
		switch {
		case errors.Is(err, ErrCampaignNotFound):
			return response.NotFound(c, "Campaign")
		case errors.Is(err, ErrNotPublished):
			return response.Error(c, fiber.StatusBadRequest, "NOT_PUBLISHED", "Campaign is not published", nil)
		case errors.Is(err, ErrFormDisabled):
			return response.FormDisabled(c)
		case errors.As(err, &verrs):
			return response.ValidationFailed(c, verrs)
		default:
			return response.InternalError(c, "Failed to save submission")
		}
	}

	successMessage := cmp.SuccessMessage
	if successMessage == "" {
		successMessage = "Thank you for your submission"
	}

	return response.Created(c, fiber.Map{
		"submission_id":   sub.ID,
		"success_message": successMessage,
		"redirect_url":    cmp.RedirectURL,
	}, "Submission recorded")
}

// ListSubmissionsHandler is admin-only: paginated, newest first.
func ListSubmissionsHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid campaign ID", nil)
	}

	if _, err := GetByID(uint(id)); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return response.NotFound(c, "Campaign")
		}
		return response.InternalError(c, "Failed to fetch campaign")
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	subs, total, err := ListSubmissions(uint(id), page, limit)
	if err != nil {
		return response.InternalError(c, "Failed to fetch submissions")
	}

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, subs, meta, "Submissions retrieved successfully")
}

func CreateCampaignHandler(c *fiber.Ctx) error {
	var body CampaignInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	body.Content = policy.Sanitize(body.Content)

	cmp, err := CreateCampaign(&body)
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			return response.ValidationFailed(c, verrs)
		}
		return response.InternalError(c, "Failed to create campaign")
	}

	return response.Created(c, cmp, "Campaign created successfully")
}

func UpdateCampaignHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid campaign ID", nil)
	}

	var body CampaignInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	body.Content = policy.Sanitize(body.Content)

	cmp, err := UpdateCampaign(uint(id), &body)
	if err != nil {
		var verrs ValidationErrors
		switch {
		case errors.Is(err, ErrCampaignNotFound):
			return response.NotFound(c, "Campaign")
		case errors.As(err, &verrs):
			return response.ValidationFailed(c, verrs)
		default:
			return response.InternalError(c, "Failed to update campaign")
		}
	}

	return response.Success(c, cmp, "Campaign updated successfully")
}

func DeleteCampaignHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid campaign ID", nil)
	}

	if err := DeleteCampaign(uint(id)); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return response.NotFound(c, "Campaign")
		}
		return response.InternalError(c, "Failed to delete campaign")
	}

	return response.NoContent(c)
}
