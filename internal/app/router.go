package app

import (
	"github.com/logicshrey/Learnopolis-v2/docs"
	"github.com/logicshrey/Learnopolis-v2/internal/config"
	"github.com/logicshrey/Learnopolis-v2/internal/middleware"
	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/signup", c.auth.Register)
			auth.POST("/login", c.auth.Login)
		}

		// 课程目录与学习路径允许游客浏览
		public.GET("/courses", c.course.Search)
		public.GET("/courses/featured", c.course.GetFeatured)
		public.GET("/courses/:id", c.course.GetByID)
		public.GET("/learning-paths", c.learningPath.GetLearningPaths)
		public.GET("/leaderboard", c.leaderboard.GetLeaderboard)
		public.GET("/videos", c.video.ListVideos)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/me", c.auth.Me)

	rg.GET("/user/stats", c.user.GetStats)
	rg.GET("/user/profile", c.user.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.GET("/user/achievements", c.user.GetAchievements)
	rg.POST("/feedback", c.user.SubmitFeedback)

	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/recommendations", c.recommendation.GetRecommendations)

	// 课程报名与进度
	rg.POST("/courses/:id/enroll", c.course.Enroll)
	rg.GET("/courses/:id/progress", c.course.GetProgress)
	rg.POST("/courses/:id/progress", c.course.UpdateProgress)

	// 每日挑战
	rg.GET("/challenges/today", c.challenge.GetToday)
	rg.POST("/challenges/:id/complete", c.challenge.Complete)

	// 视频观看记录
	rg.GET("/videos/completed", c.video.GetCompleted)
	rg.POST("/videos/:id/complete", c.video.MarkCompleted)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/videos", c.video.UploadVideo)
		admin.DELETE("/videos/:id", c.video.DeleteVideo)
		admin.GET("/feedback", c.user.ListFeedback)
	}
}
