package routes

import (
	"github.com/admitly/counselor/internal/app/controllers"
	"github.com/admitly/counselor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Controllers groups every controller the router mounts.
type Controllers struct {
	Course      *controllers.CourseController
	Scholarship *controllers.ScholarshipController
	VoiceLog    *controllers.VoiceLogController
	Webhook     *controllers.WebhookController
	Assistant   *controllers.AssistantController
	Auth        *controllers.AuthController
}

// Guards are the middleware applied to protected route groups.
type Guards struct {
	Auth           *middleware.AuthMiddleware
	WebhookLimiter *middleware.IPRateLimiter
	WebhookSecret  string
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, g Guards) {
	api := router.Group("/api")

	// --- Public catalog routes ---
	courses := api.Group("/courses")
	{
		courses.GET("", c.Course.GetAllCourses)
		courses.GET("/search", c.Course.SearchCourses)
		courses.GET("/category/:category", c.Course.GetCoursesByCategory)
		courses.GET("/:id", c.Course.GetCourseByID)
	}

	api.POST("/scholarship/calculate", c.Scholarship.Calculate)

	// --- Voice service routes ---
	webhook := api.Group("/vapi")
	if g.WebhookLimiter != nil {
		webhook.Use(middleware.RateLimit(g.WebhookLimiter))
	}
	webhook.Use(middleware.WebhookSecret(g.WebhookSecret))
	{
		webhook.POST("/webhook", c.Webhook.HandleWebhook)
	}

	api.GET("/voice-logs", c.VoiceLog.GetLogsBySession)
	api.GET("/voice-logs/:id", c.VoiceLog.GetLogByID)
	api.GET("/calls/:sessionId/status", c.Webhook.GetCallStatus)
	api.GET("/assistant/config", c.Assistant.GetConfig)

	// --- Auth routes ---
	api.POST("/auth/login", c.Auth.Login)

	// --- Authenticated Routes Group ---
	admin := api.Group("")
	admin.Use(g.Auth.JWTAuth())
	{
		admin.POST("/courses", c.Course.CreateCourse)
	}
}
