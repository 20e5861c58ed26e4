package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindscreen_backend/internal/config"
	"mindscreen_backend/internal/controller"
	"mindscreen_backend/internal/repository"
	"mindscreen_backend/internal/service"
	"mindscreen_backend/pkg/database"
	"mindscreen_backend/pkg/logger"
	"mindscreen_backend/pkg/monitoring"
	"mindscreen_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *gin.Engine

	tracerProvider *sdktrace.TracerProvider
}

type controllers struct {
	Auth         *controller.AuthController
	Org          *controller.OrganizationController
	Quest        *controller.QuestionnaireController
	Config       *controller.ScoringConfigController
	Response     *controller.ResponseController
	Notification *controller.NotificationController
	Export       *controller.ExportController
	Health       *controller.HealthController
	userActivity *repository.UserRepository
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The platform degrades without Redis (no form cache, no live
		// alert channel) but still serves.
		logger.Log.Warn("Redis unavailable, running without cache and pub/sub", zap.Error(err))
		rdb = nil
	}

	monitoring.Init()

	a := &App{Config: cfg, DB: db, Redis: rdb}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("mindscreen", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Warn("Tracing init failed, continuing without it", zap.Error(err))
		} else {
			a.tracerProvider = tp
		}
	}

	ctls, err := a.buildControllers()
	if err != nil {
		return nil, err
	}
	a.Router = a.setupRouter(ctls)

	return a, nil
}

func (a *App) buildControllers() (*controllers, error) {
	users := repository.NewUserRepository(a.DB)
	orgs := repository.NewOrganizationRepository(a.DB)
	quests := repository.NewQuestionnaireRepository(a.DB)
	configs := repository.NewScoringConfigRepository(a.DB)
	responses := repository.NewResponseRepository(a.DB)
	notifications := repository.NewNotificationRepository(a.DB)

	storage, err := service.NewStorageProvider(a.Config)
	if err != nil {
		return nil, err
	}

	authSvc := service.NewAuthService(users, orgs, a.Config)
	orgSvc := service.NewOrganizationService(orgs, users)
	questSvc := service.NewQuestionnaireService(quests, a.Redis)
	configSvc := service.NewScoringConfigService(configs)
	notifySvc := service.NewNotificationService(notifications, users, a.Redis, a.Config.Alerts.Channel)
	scoringSvc := service.NewScoringService(responses, quests, configSvc, notifySvc)
	responseSvc := service.NewResponseService(responses, quests, scoringSvc)
	exportSvc := service.NewExportService(responses, quests, storage)

	return &controllers{
		Auth:         controller.NewAuthController(authSvc),
		Org:          controller.NewOrganizationController(orgSvc),
		Quest:        controller.NewQuestionnaireController(questSvc),
		Config:       controller.NewScoringConfigController(configSvc, questSvc),
		Response:     controller.NewResponseController(responseSvc, scoringSvc, questSvc),
		Notification: controller.NewNotificationController(notifySvc),
		Export:       controller.NewExportController(exportSvc, questSvc),
		Health:       controller.NewHealthController(a.DB, a.Redis),
		userActivity: users,
	}, nil
}

// Reload applies the config fields that are safe to change at runtime.
func (a *App) Reload(cfg *config.Config) {
	a.Config.JWT = cfg.JWT
	a.Config.Alerts = cfg.Alerts
	logger.Log.Info("Configuration reloaded")
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}

	return srv.Shutdown(ctx)
}
