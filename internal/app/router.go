package app

import (
	"codista_lms/internal/config"
	"codista_lms/internal/middleware"
	"codista_lms/internal/model"
	"codista_lms/pkg/monitoring"

	"codista_lms/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"

	router.GET("/health", c.health.HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", c.auth.Signup)
		auth.POST("/login", c.auth.Login)
		auth.GET("/me", middleware.AuthMiddleware(cfg), c.auth.Me)
	}

	courses := api.Group("/courses")
	{
		// catalog reads are public; writes are instructor only
		courses.GET("", c.course.List)
		courses.POST("",
			middleware.AuthMiddleware(cfg),
			middleware.RequireRole(model.Instructor, "Access denied. Instructors only."),
			c.course.Create)
		courses.POST("/:id/video",
			middleware.AuthMiddleware(cfg),
			middleware.RequireRole(model.Instructor, "Access denied. Instructors only."),
			c.course.UploadVideo)
	}

	progress := api.Group("/progress", middleware.AuthMiddleware(cfg))
	{
		progress.GET("", c.progress.List)
		progress.POST("/video", c.progress.MarkVideo)
		progress.POST("/quiz", c.progress.SaveQuiz)
	}

	questions := api.Group("/questions")
	{
		// thread reads are public; writes need a token
		questions.GET("/:id", c.question.ListByCourse)
		questions.POST("", middleware.AuthMiddleware(cfg), c.question.Ask)
		questions.POST("/:id/reply",
			middleware.AuthMiddleware(cfg),
			middleware.RequireRole(model.Instructor, "Only instructors can reply to questions."),
			c.question.Reply)
	}
}
