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

	httpapi "github.com/kolmarket/kolmarket/internal/market/http"
	"github.com/kolmarket/kolmarket/internal/market/instagram"
	"github.com/kolmarket/kolmarket/internal/market/mail"
	"github.com/kolmarket/kolmarket/internal/market/service"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/internal/market/store/drivers/sqlite"
	"github.com/kolmarket/kolmarket/pkg/jwtx"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the marketplace service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer jwtx.Signer

	// Services
	userService     *service.UserService
	kolService      *service.KOLService
	campaignService *service.CampaignService
	inviteService   *service.InviteService
	statsService    *service.StatsService
	instagram       *instagram.Client

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "market-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, err := initSessionKey(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session key: %w", err)
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("market service starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down market service...")

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

	app.logger.Info("market service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
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
	app.userService = &service.UserService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.kolService = &service.KOLService{Store: app.db}
	app.campaignService = &service.CampaignService{Store: app.db}
	app.statsService = &service.StatsService{Store: app.db}

	var notifier mail.Notifier
	if app.cfg.SendGridAPIKey != "" {
		notifier = mail.NewSendGridNotifier(app.cfg.SendGridAPIKey, app.cfg.MailFromEmail, app.cfg.MailFromName)
		app.logger.Info("invite mail delivery enabled (sendgrid)")
	} else {
		notifier = mail.LogNotifier{}
		app.logger.Info("invite mail delivery disabled, logging links instead")
	}

	app.inviteService = &service.InviteService{
		Store:         app.db,
		Notifier:      notifier,
		InviteTTL:     app.cfg.InviteTTL,
		InviteBaseURL: app.cfg.InviteBaseURL,
	}

	app.instagram = instagram.NewClient(instagram.Config{
		AppID:       app.cfg.InstagramAppID,
		AppSecret:   app.cfg.InstagramAppSecret,
		RedirectURI: app.cfg.InstagramRedirectURI,
	})
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	verifier := jwtx.NewVerifierEdDSA(app.signer.Public(), app.cfg.Issuer)

	router := httpapi.NewRouter(
		verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.KOLService = app.kolService
	router.CampaignService = app.campaignService
	router.InviteService = app.inviteService
	router.StatsService = app.statsService
	router.Instagram = app.instagram
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
