package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/gymdesk/internal/gym/http"
	"github.com/aussiebroadwan/gymdesk/internal/gym/mail"
	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store/drivers/sqlite"
	"github.com/aussiebroadwan/gymdesk/pkg/jwtx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application holds the gym API and its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     *sqlite.Store
	keys   *jwtx.KeyRing
	mailer mail.Sender

	// Services
	loginService        *service.LoginService
	mfaService          *service.MFAService
	adminService        *service.AdminService
	memberService       *service.MemberService
	packageService      *service.PackageService
	billingService      *service.BillingService
	notificationService *service.NotificationService
	reportService       *service.ReportService
	shopService         *service.ShopService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "gymd",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New opens the database, loads keys and wires every service. It does not
// start listening; call Run for that.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	db, err := OpenDatabase(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	keys, err := InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.keys = keys

	mailer, err := newMailer(cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.mailer = mailer

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("invalid GYM_TIMEZONE %q: %w", cfg.Timezone, err)
	}

	app.initServices(loc)
	app.initHTTP()

	return app, nil
}

// OpenDatabase opens the SQLite file and, unless disabled, applies
// migrations.
func OpenDatabase(cfg Config, logger *slog.Logger) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(sqlite.FileDSN(cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if !cfg.AutoMigrate {
		return db, nil
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Info("database migrations applied successfully", "path", cfg.DatabaseFile)
	return db, nil
}

func newMailer(cfg Config, logger *slog.Logger) (mail.Sender, error) {
	if cfg.SMTP.Host == "" {
		logger.Warn("SMTP_HOST not set; mail will be logged instead of sent")
		return mail.LogSender{}, nil
	}

	sender, err := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: "Gymdesk",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}
	logger.Info("smtp mailer configured", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
	return sender, nil
}

func (app *Application) initServices(loc *time.Location) {
	app.mfaService = &service.MFAService{Store: app.db, Issuer: "Gymdesk"}
	app.loginService = &service.LoginService{
		Store:      app.db,
		Mailer:     app.mailer,
		Keys:       app.keys,
		MFA:        app.mfaService,
		BaseURL:    app.cfg.BaseURL,
		TokenTTL:   app.cfg.LoginTokenTTL,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.adminService = &service.AdminService{Store: app.db, BootstrapToken: app.cfg.BootstrapToken}
	app.memberService = &service.MemberService{Store: app.db}
	app.packageService = &service.PackageService{Store: app.db}
	app.billingService = &service.BillingService{Store: app.db}
	app.notificationService = &service.NotificationService{Store: app.db, Mailer: app.mailer}
	app.reportService = &service.ReportService{Store: app.db, Location: loc}
	app.shopService = &service.ShopService{Store: app.db, Location: loc}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.billingService,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.keys, BuildVersion, app.db, app.logger)

	router.LoginService = app.loginService
	router.MFAService = app.mfaService
	router.AdminService = app.adminService
	router.MemberService = app.memberService
	router.PackageService = app.packageService
	router.BillingService = app.billingService
	router.NotificationService = app.notificationService
	router.ReportService = app.reportService
	router.ShopService = app.shopService
	router.ApplyRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:              app.cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Logger returns the process logger.
func (app *Application) Logger() *slog.Logger { return app.logger }

// Logins exposes the sign-in flow to operator commands.
func (app *Application) Logins() *service.LoginService { return app.loginService }

// Admins exposes admin registration to operator commands.
func (app *Application) Admins() *service.AdminService { return app.adminService }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("gym service starting", "addr", app.cfg.Addr, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown drains the HTTP server, stops housekeeping and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down gym service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("gym service stopped")
	return nil
}

// Close releases the database for applications that never ran.
func (app *Application) Close() error {
	return app.db.Close()
}
