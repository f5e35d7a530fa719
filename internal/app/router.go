package app

import (
	"studyspace_backend/docs"
	"studyspace_backend/internal/middleware"
	"studyspace_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 业务路由，全部要求调用方携带 X-User-ID
	api := router.Group("/api")
	api.Use(middleware.IdentityMiddleware())
	{
		study := api.Group("/study")
		{
			study.POST("/session", c.study.OpenSession)
			study.PUT("/progress", c.study.SaveProgress)
			study.GET("/progress", c.study.GetProgress)
			study.POST("/notes/sentiment", c.study.AnalyzeSentiment)
			study.POST("/notes/summary", c.study.SummarizeNotes)
			study.POST("/transcribe", c.study.TranscribeAudio)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", c.task.AddTask)
			tasks.GET("", c.task.ListTasks)
			tasks.POST("/:taskId/complete", c.task.CompleteTask)
		}

		reminders := api.Group("/reminders")
		{
			reminders.POST("", c.reminder.AddReminder)
			reminders.GET("", c.reminder.ListReminders)
		}

		quiz := api.Group("/quiz/sessions")
		{
			quiz.POST("", c.quiz.StartQuiz)
			quiz.POST("/:sessionId/answers", c.quiz.SubmitAnswer)
			quiz.POST("/:sessionId/finalize", c.quiz.FinalizeQuiz)
		}
	}
}
