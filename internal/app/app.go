package app

import (
	"codelearn_backend/internal/config"
	"codelearn_backend/internal/controller"
	"codelearn_backend/internal/repository"
	"codelearn_backend/internal/service"
	"codelearn_backend/pkg/database"
	"codelearn_backend/pkg/logger"
	"codelearn_backend/pkg/monitoring"
	"codelearn_backend/pkg/security"
	"codelearn_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user             *repository.UserRepository
	progress         *repository.ProgressRepository
	exerciseState    *repository.ExerciseStateRepository
	feedbackTemplate *repository.FeedbackTemplateRepository
	reviewLog        *repository.ReviewLogRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	progression *service.ProgressionService
	autosave    *service.AutosaveService
	feedback    *service.FeedbackService
	aiReview    *service.AIReviewService
	stats       *service.StatsService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	exercise *controller.ExerciseController
	review   *controller.ReviewController
	stats    *controller.StatsController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:             repository.NewUserRepository(db),
		progress:         repository.NewProgressRepository(db),
		exerciseState:    repository.NewExerciseStateRepository(db),
		feedbackTemplate: repository.NewFeedbackTemplateRepository(db),
		reviewLog:        repository.NewReviewLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.progression = service.NewProgressionService(repos.progress, repos.exerciseState)
	// 自动保存 1 秒去抖，与前端编辑器的输入节奏匹配
	s.autosave = service.NewAutosaveService(repos.progress, time.Second)
	s.feedback = service.NewFeedbackService(repos.feedbackTemplate)
	s.aiReview = service.NewAIReviewService(cfg.AI, repos.reviewLog)
	s.stats = service.NewStatsService(repos.user, repos.progress, rdb)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(repos.user, s.storage),
		exercise: controller.NewExerciseController(s.progression, s.feedback, s.autosave, s.stats),
		review:   controller.NewReviewController(s.aiReview, repos.reviewLog),
		stats:    controller.NewStatsController(s.stats),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	// 配置注入，供 AuthMiddleware 等从上下文读取
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	// release 模式默认不做结构迁移，除非命令行显式要求
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	// 仅迁移模式：表结构与种子数据已就绪，直接返回
	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, repos, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("codelearn-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 落盘未保存的代码草稿
	if a.services != nil && a.services.autosave != nil {
		a.services.autosave.Close()
	}

	// 关闭服务
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
