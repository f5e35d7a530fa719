package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyspace_backend/internal/config"
	"studyspace_backend/internal/controller"
	"studyspace_backend/internal/repository"
	"studyspace_backend/internal/service"
	"studyspace_backend/pkg/configwatcher"
	"studyspace_backend/pkg/database"
	"studyspace_backend/pkg/logger"
	"studyspace_backend/pkg/monitoring"
	"studyspace_backend/pkg/security"
	"studyspace_backend/pkg/tracing"

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

type stores struct {
	progress repository.ProgressStore
	task     repository.TaskStore
	reminder repository.ReminderStore
}

type services struct {
	progress   *service.ProgressService
	task       *service.TaskService
	reminder   *service.ReminderService
	quiz       *service.QuizService
	metadata   *service.MetadataService
	ai         *service.AIService
	transcribe *service.TranscribeService
	session    *service.SessionService
	storage    service.StorageProvider
}

type controllers struct {
	study    *controller.StudyController
	task     *controller.TaskController
	reminder *controller.ReminderController
	quiz     *controller.QuizController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// initStores 按配置选择存储实现：mysql 走 gorm，memory 走进程内存储
func (a *App) initStores(db *gorm.DB) *stores {
	if db == nil {
		return &stores{
			progress: repository.NewMemoryProgressStore(),
			task:     repository.NewMemoryTaskStore(),
			reminder: repository.NewMemoryReminderStore(),
		}
	}

	return &stores{
		progress: repository.NewStudyMaterialRepository(db),
		task:     repository.NewTaskRepository(db),
		reminder: repository.NewReminderRepository(db),
	}
}

func (a *App) initServices(st *stores, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageProvider(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	bank, err := service.LoadQuizBank(cfg.Quiz.BankPath)
	if err != nil {
		return nil, err
	}

	s.progress = service.NewProgressService(st.progress)
	s.task = service.NewTaskService(st.task)
	s.reminder = service.NewReminderService(st.reminder)
	s.quiz = service.NewQuizService(bank)
	s.metadata = service.NewMetadataService(cfg.Media, rdb)
	s.ai = service.NewAIService(cfg.AI)
	s.transcribe = service.NewTranscribeService(cfg.Media)

	s.session = service.NewSessionService(
		s.progress,
		s.task,
		s.reminder,
		s.quiz,
		s.metadata,
		s.ai,
		s.ai,
		s.transcribe,
	)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		study:    controller.NewStudyController(s.session, s.storage),
		task:     controller.NewTaskController(s.task),
		reminder: controller.NewReminderController(s.reminder),
		quiz:     controller.NewQuizController(s.quiz),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
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

	var db *gorm.DB
	if cfg.Database.Driver != "memory" {
		var err error
		db, err = database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		}

		if cfg.ForceMigrate || cfg.Server.Mode == "debug" {
			if err := database.Migrate(db); err != nil {
				logger.Log.Fatal("Failed to migrate database", zap.Error(err))
			}
		}
	} else {
		logger.Log.Info("Using in-memory stores, data will not be persisted")
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	// Redis 只用作元数据缓存，连不上时降级为直连
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, metadata caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	st := app.initStores(db)
	services, err := app.initServices(st, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("studyspace", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.Log.Info("config reloaded", zap.String("mode", newCfg.Server.Mode))
	})

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

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
