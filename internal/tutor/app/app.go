package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/edunest/tutord/internal/tutor/http"
	"github.com/edunest/tutord/internal/tutor/rag"
	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/internal/tutor/store"
	"github.com/edunest/tutord/internal/tutor/store/drivers/sqlite"
	"github.com/edunest/tutord/pkg/cryptox"
	"github.com/edunest/tutord/pkg/ragsdk"
	"github.com/edunest/tutord/pkg/slogx"
	"github.com/edunest/tutord/pkg/videosdk"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the tutor service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db store.Store

	// Services
	userService     *service.UserService
	sessionService  *service.SessionService
	historyService  *service.HistoryService
	chatService     *service.ChatService
	subjectsService *service.SubjectsService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "tutor-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("tutor service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down tutor service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("tutor service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		app.cfg.DatabaseFile,
	)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.sessionService = &service.SessionService{Store: app.db}
	app.historyService = &service.HistoryService{Store: app.db}
	app.subjectsService = &service.SubjectsService{Dir: app.cfg.SubjectsDir}

	chat := &service.ChatService{
		History:    app.historyService,
		Answers:    &rag.AnswerEngine{Client: ragsdk.NewClient(app.cfg.RAGBaseURL)},
		VideoLimit: app.cfg.VideoLimit,
	}
	if app.cfg.VideoSearchBaseURL != "" {
		chat.Videos = &rag.VideoSearch{Client: videosdk.NewClient(app.cfg.VideoSearchBaseURL)}
	} else {
		app.logger.Info("video search not configured, suggestions disabled")
	}
	app.chatService = chat
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.cfg.CORSAllowedOrigins,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.ChatService = app.chatService
	router.HistoryService = app.historyService
	router.SubjectsService = app.subjectsService
	router.StaticDir = app.cfg.StaticDir
	router.HistoryLimit = app.cfg.HistoryLimit
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
