package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medico-backend/config"
	deliveryHttp "medico-backend/internal/delivery/http"
	"medico-backend/internal/delivery/http/handler"
	"medico-backend/internal/delivery/http/middleware"
	"medico-backend/internal/infrastructure/cache"
	"medico-backend/internal/infrastructure/database"
	"medico-backend/internal/infrastructure/firebase"
	"medico-backend/internal/repository"
	"medico-backend/internal/service"
	"medico-backend/internal/usecase"
	"medico-backend/pkg/jwt"
	"medico-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const version = "1.0.0"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
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

	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize Firebase (auth + messaging)
	firebaseClients, err := firebase.NewClients(context.Background(), cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, redisClient, firebaseClients)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, firebaseClients *firebase.Clients) *http.Server {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRecordRepo := repository.NewRoleRecordRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	doctorClinicRepo := repository.NewDoctorClinicRepository()
	clinicRepo := repository.NewClinicRepository()
	pharmacyRepo := repository.NewPharmacyRepository()
	pushTokenRepo := repository.NewPushTokenRepository()
	notificationRepo := repository.NewNotificationRepository()

	// Initialize services
	cacheManager := service.NewCacheManager(redisClient, log)
	pushSender := service.NewFCMSender(firebaseClients.Messaging, log)
	environmentService := service.NewEnvironmentService(cfg.Google.MapsAPIKey, cacheManager, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRecordRepo, pushTokenRepo, firebaseClients.Auth, jwtService, cacheManager)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, roleRecordRepo, cacheManager)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo, pushTokenRepo, userRepo, pushSender)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, notificationUsecase)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, doctorClinicRepo, clinicRepo, cacheManager)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo, cacheManager)
	pharmacyUsecase := usecase.NewPharmacyUsecase(db, log, pharmacyRepo, cacheManager)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, appointmentRepo, doctorRepo, clinicRepo, pharmacyRepo, notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	pharmacyHandler := handler.NewPharmacyHandler(pharmacyUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase)
	environmentHandler := handler.NewEnvironmentHandler(environmentService)
	healthHandler := handler.NewHealthHandler(db, redisClient, version)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.Origins)
	rateLimiter := middleware.NewIPRateLimiter(cfg.App.RateLimitPerMinute)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		appointmentHandler,
		doctorHandler,
		clinicHandler,
		pharmacyHandler,
		notificationHandler,
		adminHandler,
		environmentHandler,
		healthHandler,
		authMiddleware,
		corsMiddleware,
		rateLimiter,
		cfg.Admin.NotificationSecret,
	)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      httpRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
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
