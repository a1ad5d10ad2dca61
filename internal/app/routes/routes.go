package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/controllers"
	"github.com/yigit/alumnihub/internal/middleware"
)

// Upload folders under the storage root
const (
	StoryUploadFolder = "stories"
	PostUploadFolder  = "posts"
)

// imageField is the multipart field the client uses for uploads
const imageField = "image"

// Handlers groups everything the route table needs
type Handlers struct {
	Auth    *controllers.AuthController
	Job     *controllers.JobController
	Story   *controllers.StoryController
	Post    *controllers.PostController
	Event   *controllers.EventController
	Inquiry *controllers.InquiryController
	Health  *controllers.HealthController

	AuthMiddleware   *middleware.AuthMiddleware
	UploadMiddleware *middleware.UploadMiddleware
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	protect := h.AuthMiddleware.Protect()
	adminOnly := h.AuthMiddleware.AdminOnly()

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", protect, h.Auth.Me)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.Job.GetJobs)
		jobs.GET("/:id", h.Job.GetJob)
		jobs.POST("", protect, h.Job.CreateJob)
		jobs.PUT("/:id", protect, h.Job.UpdateJob)
		jobs.DELETE("/:id", protect, h.Job.DeleteJob)
	}

	// Protect runs before the upload so anonymous requests never reach storage
	storyImage := h.UploadMiddleware.Single(imageField, StoryUploadFolder)
	stories := api.Group("/stories")
	{
		stories.GET("", h.Story.GetStories)
		stories.GET("/:id", h.Story.GetStory)
		stories.POST("", protect, storyImage, h.Story.CreateStory)
		stories.PUT("/:id", protect, storyImage, h.Story.UpdateStory)
		stories.DELETE("/:id", protect, h.Story.DeleteStory)
		stories.PATCH("/:id/status", protect, adminOnly, h.Story.UpdateStoryStatus)
	}

	postImage := h.UploadMiddleware.Single(imageField, PostUploadFolder)
	posts := api.Group("/posts", protect)
	{
		posts.GET("", h.Post.GetPosts)
		posts.GET("/:id", h.Post.GetPost)
		posts.POST("", postImage, h.Post.CreatePost)
		posts.PUT("/:id", postImage, h.Post.UpdatePost)
		posts.DELETE("/:id", h.Post.DeletePost)
		posts.PUT("/:id/like", h.Post.LikePost)
	}

	events := api.Group("/events")
	{
		events.GET("", h.Event.GetEvents)
		events.GET("/:id", h.Event.GetEvent)
		events.POST("", protect, h.Event.CreateEvent)
		events.PUT("/:id", protect, h.Event.UpdateEvent)
		events.DELETE("/:id", protect, h.Event.DeleteEvent)
	}

	inquiries := api.Group("/inquiries")
	{
		inquiries.POST("", h.Inquiry.CreateInquiry)

		admin := inquiries.Group("", protect, adminOnly)
		admin.GET("", h.Inquiry.GetInquiries)
		admin.GET("/:id", h.Inquiry.GetInquiry)
		admin.PATCH("/:id/status", h.Inquiry.UpdateInquiryStatus)
	}
}
