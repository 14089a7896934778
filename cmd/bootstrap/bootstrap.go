package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetclinic-backend/config"
	deliveryHttp "vetclinic-backend/internal/delivery/http"
	"vetclinic-backend/internal/delivery/http/handler"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/infrastructure/cache"
	"vetclinic-backend/internal/infrastructure/database"
	"vetclinic-backend/internal/repository"
	"vetclinic-backend/internal/service"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

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

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Seed the treatment and product catalogs on first boot
	if err := database.SeedCatalogs(db); err != nil {
		return nil, fmt.Errorf("failed to seed catalogs: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	treatmentRepo := repository.NewTreatmentRepository(db)
	productRepo := repository.NewProductRepository(db)
	productSaleRepo := repository.NewProductSaleRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	priceCatalog := service.NewPriceCatalog(redisClient, log, treatmentRepo)
	auditService := service.NewAuditService(log, auditLogRepo)
	invoiceRenderer := service.NewPDFInvoiceRenderer()
	mailer := service.NewSMTPMailer(cfg.SMTP)

	// Initialize usecases
	ownerUsecase := usecase.NewOwnerUsecase(log, ownerRepo)
	animalUsecase := usecase.NewAnimalUsecase(log, animalRepo, ownerRepo,
		usecase.RequirePermitForSpecies("snake", "serpiente"))
	appointmentUsecase := usecase.NewAppointmentUsecase(log, cfg.Clinic, cfg.Invoice,
		appointmentRepo, ownerRepo, animalRepo, invoiceRepo, priceCatalog, auditService)
	invoiceUsecase := usecase.NewInvoiceUsecase(log, invoiceRepo, ownerRepo, invoiceRenderer, mailer)
	treatmentUsecase := usecase.NewTreatmentUsecase(log, treatmentRepo, priceCatalog)
	productUsecase := usecase.NewProductUsecase(log, productRepo, productSaleRepo, auditService)

	// Initialize handlers
	ownerHandler := handler.NewOwnerHandler(ownerUsecase, customValidator)
	animalHandler := handler.NewAnimalHandler(animalUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUsecase, customValidator)
	treatmentHandler := handler.NewTreatmentHandler(treatmentUsecase, customValidator)
	productHandler := handler.NewProductHandler(productUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		ownerHandler,
		animalHandler,
		appointmentHandler,
		invoiceHandler,
		treatmentHandler,
		productHandler,
		corsMiddleware,
		loggingMiddleware,
		metricsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
