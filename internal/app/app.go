package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/logicshrey/Learnopolis-v2/internal/config"
	"github.com/logicshrey/Learnopolis-v2/internal/controller"
	"github.com/logicshrey/Learnopolis-v2/internal/repository"
	"github.com/logicshrey/Learnopolis-v2/internal/service"
	"github.com/logicshrey/Learnopolis-v2/pkg/database"
	"github.com/logicshrey/Learnopolis-v2/pkg/logger"
	"github.com/logicshrey/Learnopolis-v2/pkg/monitoring"
	"github.com/logicshrey/Learnopolis-v2/pkg/security"
	"github.com/logicshrey/Learnopolis-v2/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	course    *repository.CourseRepository
	progress  *repository.ProgressRepository
	video     *repository.VideoRepository
	challenge *repository.ChallengeRepository
	feedback  *repository.FeedbackRepository
}

type services struct {
	auth           *service.AuthService
	storage        *service.StorageService
	user           *service.UserService
	course         *service.CourseService
	recommendation *service.RecommendationService
	learningPath   *service.LearningPathService
	leaderboard    *service.LeaderboardService
	challenge      *service.ChallengeService
	dashboard      *service.DashboardService
	video          *service.VideoService
}

type controllers struct {
	auth           *controller.AuthController
	user           *controller.UserController
	course         *controller.CourseController
	recommendation *controller.RecommendationController
	learningPath   *controller.LearningPathController
	dashboard      *controller.DashboardController
	leaderboard    *controller.LeaderboardController
	video          *controller.VideoController
	challenge      *controller.ChallengeController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新配置，通知所有注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		course:    repository.NewCourseRepository(db),
		progress:  repository.NewProgressRepository(db),
		video:     repository.NewVideoRepository(db),
		challenge: repository.NewChallengeRepository(db),
		feedback:  repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.progress, repos.feedback)
	s.recommendation = service.NewRecommendationService(repos.user, repos.course, repos.progress, rdb)
	s.course = service.NewCourseService(repos.course, repos.progress, repos.user, s.recommendation)
	s.learningPath = service.NewLearningPathService(repos.course)
	s.leaderboard = service.NewLeaderboardService(repos.user, rdb)
	s.challenge = service.NewChallengeService(repos.challenge, repos.user, repos.progress)
	s.dashboard = service.NewDashboardService(s.user, s.recommendation, s.learningPath, s.challenge)
	s.video = service.NewVideoService(repos.video, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth, s.user),
		user:           controller.NewUserController(s.user),
		course:         controller.NewCourseController(s.course),
		recommendation: controller.NewRecommendationController(s.recommendation),
		learningPath:   controller.NewLearningPathController(s.learningPath),
		dashboard:      controller.NewDashboardController(s.dashboard),
		leaderboard:    controller.NewLeaderboardController(s.leaderboard),
		video:          controller.NewVideoController(s.video),
		challenge:      controller.NewChallengeController(s.challenge),
		health:         controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
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
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 不可用时降级运行，缓存层自动跳过
		logger.Log.Warn("Redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learnopolis", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
