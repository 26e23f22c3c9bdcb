package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-admin-api/config"
	deliveryHttp "hospital-admin-api/internal/delivery/http"
	"hospital-admin-api/internal/delivery/http/handler"
	"hospital-admin-api/internal/delivery/http/middleware"
	"hospital-admin-api/internal/infrastructure/cache"
	"hospital-admin-api/internal/infrastructure/database"
	"hospital-admin-api/internal/infrastructure/messaging"
	"hospital-admin-api/internal/repository"
	"hospital-admin-api/internal/service"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/jwt"
	"hospital-admin-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   service.EventPublisher
	RateLimiter *middleware.RateLimiter
	Server      *http.Server
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := NewLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize database
	if err := database.RunMigrations(cfg.DB, log); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			app.Close()
			return nil, err
		}
	}
	log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	app.Publisher = messaging.NewEventPublisher(cfg.Kafka, log)

	// Initialize all layers
	httpHandler, limiter := buildHandler(cfg, db, redisClient, app.Publisher, log)
	app.RateLimiter = limiter
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// NewLogger builds the JSON logrus logger shared by every layer
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// buildHandler wires repositories, services, usecases, handlers and middleware into the router
func buildHandler(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	publisher service.EventPublisher,
	log *logrus.Logger,
) (http.Handler, *middleware.RateLimiter) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewTokenStore(redisClient, log)
	dashboardCache := service.NewDashboardCache(redisClient, log, cfg.Dashboard.CacheTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokenStore, auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, tokenStore, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, auditService, dashboardCache)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo, auditService, dashboardCache, cfg.DB.Location())
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, auditService, publisher, dashboardCache)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, doctorRepo, appointmentRepo, dashboardCache, cfg.DB.Location())
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		patientHandler,
		doctorHandler,
		appointmentHandler,
		dashboardHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		recoveryMiddleware,
		loggingMiddleware,
		rateLimiter,
	)

	return router.Setup(), rateLimiter
}

// Run serves HTTP until SIGINT/SIGTERM or a listener failure, then shuts everything down.
// The returned error is the listener failure, if any.
func (app *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		app.Log.WithFields(logrus.Fields{
			"port": app.Config.App.Port,
			"env":  app.Config.App.Env,
		}).Info("Server starting")
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		app.Log.Infof("Received %s, shutting down server...", sig)
	case runErr = <-serverErr:
		app.Log.Errorf("Server failed: %v", runErr)
	}

	app.shutdown()
	return runErr
}

func (app *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the rate limiter, event publisher, database pool and Redis client
func (app *App) Close() {
	if app.RateLimiter != nil {
		app.RateLimiter.Stop()
	}

	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Log.Warnf("Failed to close event publisher: %+v", err)
		}
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
