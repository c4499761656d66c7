package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Kimani145/Corner/internal/config"
	"github.com/Kimani145/Corner/internal/handler"
	"github.com/Kimani145/Corner/internal/health"
	"github.com/Kimani145/Corner/internal/middleware"
	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/repository"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	tokenRepo *repository.TokenRepository,
	healthChecker *health.Checker,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	messageHandler *handler.MessageHandler,
	badgeHandler *handler.BadgeHandler,
	courseHandler *handler.CourseHandler,
	feedbackHandler *handler.FeedbackHandler,
	dashboardHandler *handler.DashboardHandler,
) *gin.Engine {
	// 设置 Gin 模式
	gin.SetMode(cfg.App.Mode)

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowCredentials,
	))

	// 健康检查
	r.GET("/health", gin.WrapH(healthChecker))

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 认证接口（无需登录）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// 需要认证的接口
		authenticated := v1.Group("")
		authenticated.Use(middleware.TokenAuth(tokenRepo, cfg.JWT.AccessExpire, cfg.JWT.AutoRenewThreshold))
		{
			// 登出
			authenticated.POST("/auth/logout", authHandler.Logout)

			// 用户接口
			user := authenticated.Group("/user")
			{
				user.GET("/profile", userHandler.GetProfile)
				user.PUT("/profile", userHandler.UpdateProfile)
				user.GET("/search", userHandler.Search)
				user.GET("/:id", userHandler.GetUserByID)
			}

			// 消息接口
			messages := authenticated.Group("/messages")
			{
				messages.GET("/:peerId", messageHandler.List)
				messages.POST("", messageHandler.Send)
				messages.PUT("/:id", messageHandler.Edit)
				messages.DELETE("/:id", messageHandler.Delete)
			}

			// 通知角标接口
			notifications := authenticated.Group("/notifications")
			{
				notifications.GET("/badge", badgeHandler.Get)
				notifications.POST("/seen", badgeHandler.MarkSeen)
				notifications.GET("/stream", badgeHandler.Stream)
			}

			// 课程接口
			courses := authenticated.Group("/courses")
			{
				courses.GET("", courseHandler.ListAll)
				courses.GET("/mine", courseHandler.ListMine)
				courses.POST("", middleware.RequireRole(model.RoleTeacher), courseHandler.Create)
				courses.POST("/enroll", middleware.RequireRole(model.RoleStudent), courseHandler.Enroll)
			}

			// 反馈/问卷提交
			authenticated.POST("/feedback", feedbackHandler.SubmitFeedback)
			authenticated.POST("/surveys", feedbackHandler.SubmitSurvey)

			// 管理端接口
			admin := authenticated.Group("/admin")
			admin.Use(middleware.RequireRole(model.RoleAdmin))
			{
				admin.GET("/dashboard", dashboardHandler.Report)
				admin.GET("/feedback", dashboardHandler.ListFeedback)
				admin.GET("/surveys", dashboardHandler.ListSurveys)
			}
		}
	}

	return r
}
