package app

import (
	"codelearn_backend/docs"
	"codelearn_backend/internal/config"
	"codelearn_backend/internal/middleware"
	"codelearn_backend/internal/model"
	"codelearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 兼容旧前端的裸 JSON 健康检查
	router.GET("/health", c.health.Ping)

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// AI 点评走裸 JSON 协议，匿名可用；登录用户的调用会留痕到其账号
		public.POST("/ai-review", middleware.TryAuthMiddleware(), c.review.Review)

		public.GET("/exercises/languages", c.exercise.Languages)
		public.GET("/feedback/:language/:level", c.exercise.FeedbackTemplates)
		public.GET("/stats/leaderboard", c.stats.Leaderboard)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.POST("/user/avatar", c.user.UploadAvatar)

		exercises := authGroup.Group("/exercises/:language/:level")
		{
			exercises.GET("", c.exercise.ListLevel)
			exercises.GET("/resume", c.exercise.Resume)
			exercises.POST("/:index/submit", c.exercise.Submit)
			exercises.POST("/navigate", c.exercise.Navigate)
			exercises.PUT("/:index/draft", c.exercise.SaveDraft)
		}

		authGroup.GET("/stats/completion", c.stats.Completion)
		authGroup.GET("/stats/rank", c.stats.Rank)

		// 3. 管理员接口
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/users/:id/review-logs", c.review.UserLogs)
		}
	}
}
