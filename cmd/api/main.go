package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Kimani145/Corner/internal/config"
	"github.com/Kimani145/Corner/internal/handler"
	"github.com/Kimani145/Corner/internal/health"
	cornerNats "github.com/Kimani145/Corner/internal/nats"
	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/internal/router"
	"github.com/Kimani145/Corner/internal/service"
	"github.com/Kimani145/Corner/pkg/jwt"
	"github.com/Kimani145/Corner/pkg/snowflake"
)

func main() {
	// 初始化日志
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// 加载配置
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 创建上下文
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 连接数据库
	db, err := connectDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL", "host", cfg.Database.Host)

	// 连接 Redis
	redisClient := connectRedis(cfg.Redis)
	defer redisClient.Close()
	logger.Info("Connected to Redis", "host", cfg.Redis.Host)

	// 连接 NATS
	natsClient, err := cornerNats.NewClient(cfg.NATS)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer natsClient.Close()
	logger.Info("Connected to NATS", "url", cfg.NATS.URL)

	// 初始化 JWT 服务
	jwtService := jwt.NewService(
		cfg.JWT.SecretKey,
		cfg.JWT.AccessExpire,
		cfg.JWT.RefreshExpire,
	)

	// 初始化雪花ID生成器
	sfNode, err := snowflake.NewNode(1)
	if err != nil {
		logger.Error("Failed to create snowflake node", "error", err)
		os.Exit(1)
	}

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(redisClient)
	messageRepo := repository.NewMessageRepository(db)
	badgeRepo := repository.NewBadgeRepository(redisClient)
	courseRepo := repository.NewCourseRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)

	// 初始化 Service
	badgePublisher := cornerNats.NewBadgePublisher(natsClient.Conn())
	authService := service.NewAuthService(userRepo, tokenRepo, jwtService)
	userService := service.NewUserService(userRepo)
	badgeService := service.NewBadgeService(badgeRepo, badgePublisher, natsClient.Conn())
	conversationService := service.NewConversationService(messageRepo, userRepo, badgeService, sfNode)
	courseService := service.NewCourseService(courseRepo, userRepo, sfNode)
	feedbackService := service.NewFeedbackService(feedbackRepo, surveyRepo, userRepo, sfNode)
	dashboardService := service.NewDashboardService(feedbackRepo, surveyRepo, cfg.Dashboard.SampleSize)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	messageHandler := handler.NewMessageHandler(conversationService)
	badgeHandler := handler.NewBadgeHandler(badgeService)
	courseHandler := handler.NewCourseHandler(courseService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 健康检查
	healthChecker := health.NewChecker(cfg.App.Name, natsClient.Conn(), redisClient, db)

	// 设置路由
	r := router.SetupRouter(
		cfg,
		tokenRepo,
		healthChecker,
		authHandler,
		userHandler,
		messageHandler,
		badgeHandler,
		courseHandler,
		feedbackHandler,
		dashboardHandler,
	)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	go func() {
		logger.Info("API server started", "addr", addr, "mode", cfg.App.Mode)
		if err := r.Run(addr); err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()
	logger.Info("Server stopped")
}

// connectDatabase 连接 PostgreSQL
func connectDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = 10 * time.Minute

	return pgxpool.NewWithConfig(ctx, poolConfig)
}

// connectRedis 连接 Redis
func connectRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}
