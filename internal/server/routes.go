package server

import (
	"time"

	"github.com/SakibBhai/zoolyum-backend/internal/auth"
	"github.com/SakibBhai/zoolyum-backend/internal/campaign"
	"github.com/SakibBhai/zoolyum-backend/internal/contact"
	"github.com/SakibBhai/zoolyum-backend/internal/media"
	"github.com/SakibBhai/zoolyum-backend/internal/post"
	"github.com/SakibBhai/zoolyum-backend/internal/project"
	"github.com/SakibBhai/zoolyum-backend/internal/response"
	"github.com/SakibBhai/zoolyum-backend/internal/services"
	"github.com/SakibBhai/zoolyum-backend/internal/team"
	"github.com/SakibBhai/zoolyum-backend/internal/testimonial"
	"github.com/SakibBhai/zoolyum-backend/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// publicCORS is permissive on purpose: campaign pages get embedded and
// shared cross-origin. Admin routes never get this middleware.
func publicCORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	})
}

func SetupRoutes(app *fiber.App) {
	app.Use(logger.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "zoolyum API is running",
		})
	})

	// ==========================================
	// AUTH
	// ==========================================
	authGroup := app.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.TooManyRequests(c, "Too many login attempts, try again later")
		},
	}), auth.LoginHandler)
	authGroup.Get("/google/login", auth.GoogleLogin)
	authGroup.Get("/google/callback", auth.GoogleCallback)
	authGroup.Post("/refresh", limiter.New(limiter.Config{
		Max:        3,
		Expiration: 5 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return response.TooManyRequests(c, "Too many refresh attempts, try again later")
		},
	}), auth.RefreshHandler)
	authGroup.Post("/logout", auth.JWTProtected(), auth.LogoutHandler)
	authGroup.Get("/me", auth.JWTProtected(), auth.MeHandler)

	// ==========================================
	// PUBLIC SITE (permissive CORS)
	// ==========================================
	campaignGroup := app.Group("/campaigns")
	campaignGroup.Use(publicCORS())
	campaignGroup.Get("/", campaign.ListCampaignsHandler)
	campaignGroup.Get("/slug/:slug", campaign.GetCampaignBySlugHandler)
	campaignGroup.Post("/:id/submissions", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.TooManyRequests(c, "Too many submissions, try again later")
		},
	}), campaign.CreateSubmissionHandler)

	postGroup := app.Group("/posts")
	postGroup.Use(publicCORS())
	postGroup.Get("/", post.ListPostsHandler)
	postGroup.Get("/slug/:slug", post.GetPostBySlugHandler)

	projectGroup := app.Group("/projects")
	projectGroup.Use(publicCORS())
	projectGroup.Get("/", project.ListProjectsHandler)
	projectGroup.Get("/slug/:slug", project.GetProjectBySlugHandler)

	app.Get("/services", publicCORS(), services.ListServicesHandler)
	app.Get("/team", publicCORS(), team.ListTeamHandler)
	app.Get("/testimonials", publicCORS(), testimonial.ListTestimonialsHandler)

	app.Post("/contact", publicCORS(), limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.TooManyRequests(c, "Too many messages, try again later")
		},
	}), contact.SubmitContactHandler)

	// ==========================================
	// ADMIN DASHBOARD (JWT, no permissive CORS)
	// ==========================================
	adminGroup := app.Group("/admin")
	adminGroup.Use(auth.JWTProtected())
	adminGroup.Use(auth.RoleProtected("admin", "editor"))

	// Campaigns
	adminGroup.Post("/campaigns", campaign.CreateCampaignHandler)
	adminGroup.Get("/campaigns/:id", campaign.GetCampaignHandler)
	adminGroup.Put("/campaigns/:id", campaign.UpdateCampaignHandler)
	adminGroup.Delete("/campaigns/:id", campaign.DeleteCampaignHandler)
	adminGroup.Get("/campaigns/:id/submissions", campaign.ListSubmissionsHandler)

	// Blog
	adminGroup.Get("/posts", post.ListAllPostsHandler)
	adminGroup.Post("/posts", post.CreatePostHandler)
	adminGroup.Put("/posts/:id", post.UpdatePostHandler)
	adminGroup.Delete("/posts/:id", post.DeletePostHandler)

	// Portfolio
	adminGroup.Get("/projects", project.ListAllProjectsHandler)
	adminGroup.Post("/projects", project.CreateProjectHandler)
	adminGroup.Put("/projects/:id", project.UpdateProjectHandler)
	adminGroup.Delete("/projects/:id", project.DeleteProjectHandler)

	// Services
	adminGroup.Get("/services", services.ListAllServicesHandler)
	adminGroup.Post("/services", services.CreateServiceHandler)
	adminGroup.Put("/services/:id", services.UpdateServiceHandler)
	adminGroup.Delete("/services/:id", services.DeleteServiceHandler)

	// Team
	adminGroup.Get("/team", team.ListAllTeamHandler)
	adminGroup.Post("/team", team.CreateMemberHandler)
	adminGroup.Put("/team/:id", team.UpdateMemberHandler)
	adminGroup.Delete("/team/:id", team.DeleteMemberHandler)

	// Testimonials
	adminGroup.Get("/testimonials", testimonial.ListAllTestimonialsHandler)
	adminGroup.Post("/testimonials", testimonial.CreateTestimonialHandler)
	adminGroup.Put("/testimonials/:id", testimonial.UpdateTestimonialHandler)
	adminGroup.Delete("/testimonials/:id", testimonial.DeleteTestimonialHandler)

	// Contact inbox
	adminGroup.Get("/contacts", contact.ListContactsHandler)
	adminGroup.Put("/contacts/:id/read", contact.MarkContactReadHandler)
	adminGroup.Delete("/contacts/:id", contact.DeleteContactHandler)

	// Media library
	adminGroup.Post("/media/upload", media.UploadMediaHandler)
	adminGroup.Get("/media", media.ListMediaHandler)
	adminGroup.Delete("/media/:id", media.DeleteMediaHandler)

	// User management (admin only)
	userGroup := app.Group("/admin/users")
	userGroup.Use(auth.JWTProtected())
	userGroup.Use(auth.RoleProtected("admin"))
	userGroup.Post("/", user.CreateUserHandler)
	userGroup.Get("/", user.ListUsersHandler)
	userGroup.Get("/:id", user.GetUserHandler)
	userGroup.Put("/:id", user.UpdateUserHandler)
	userGroup.Delete("/:id", user.DeleteUserHandler)
}
