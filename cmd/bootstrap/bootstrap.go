package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook-portal/config"
	deliveryHttp "medibook-portal/internal/delivery/http"
	"medibook-portal/internal/delivery/http/handler"
	"medibook-portal/internal/delivery/http/middleware"
	"medibook-portal/internal/infrastructure/backend"
	"medibook-portal/internal/infrastructure/cache"
	"medibook-portal/internal/service"
	"medibook-portal/internal/store"
	"medibook-portal/internal/usecase"
	"medibook-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the portal
type App struct {
	Config      *config.Config
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

	// Session persistence is optional; the portal runs without Redis.
	var sessionKeeper *service.SessionKeeper
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logrus.Warnf("Session persistence disabled: %v", err)
		} else {
			app.RedisClient = redisClient
			sessionKeeper = service.NewSessionKeeper(redisClient, logrus.StandardLogger())
		}
	}

	// Initialize all layers
	server := initializeServer(cfg, sessionKeeper)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires the data layer and the HTTP facade
func initializeServer(cfg *config.Config, sessionKeeper *service.SessionKeeper) *http.Server {
	log := logrus.StandardLogger()

	// Remote data gateway
	gw := backend.NewClient(cfg.Backend, log)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize stores
	sessionStore := store.NewSessionStore()
	catalogStore := store.NewCatalogStore()

	// Confirmation gate shared by the manager and the facade
	gate := service.NewConfirmationGate()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(gw, log, sessionStore, sessionKeeper)
	catalogUsecase := usecase.NewCatalogUsecase(gw, log, catalogStore)
	appointmentManager := usecase.NewAppointmentManager(gw, log, catalogStore, sessionStore, gate)

	// Restore a persisted session, if any
	restoreSession(authUsecase, sessionKeeper)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, sessionStore, customValidator)
	doctorHandler := handler.NewDoctorHandler(catalogUsecase, catalogStore, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentManager, sessionStore, customValidator)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, doctorHandler, appointmentHandler, sessionMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// restoreSession re-adopts the persisted session so a portal restart does
// not log the user out.
func restoreSession(authUsecase usecase.AuthUsecase, sessionKeeper *service.SessionKeeper) {
	if sessionKeeper == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := sessionKeeper.Load(ctx)
	if err != nil {
		logrus.Warnf("Failed to read persisted session: %v", err)
		return
	}
	if session == nil {
		return
	}

	if err := authUsecase.Restore(ctx, *session); err != nil {
		logrus.Infof("Persisted session not restored: %v", err)
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Portal starting on port %s", app.Config.App.Port)
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

	logrus.Info("Shutting down portal...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Portal shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
