package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/openvoyage/voyage/internal/cms/http"
	"github.com/openvoyage/voyage/internal/cms/service"
	"github.com/openvoyage/voyage/internal/cms/store"
	"github.com/openvoyage/voyage/internal/cms/store/drivers/sqlite"
	"github.com/openvoyage/voyage/pkg/jwtx"
	"github.com/openvoyage/voyage/pkg/slogx"
)

// BuildVersion is stamped at build time via ldflags.
var BuildVersion = "dev"

// ErrMissingSessionSecret means CMS_SESSION_SECRET is unset. The process
// must refuse to start: serving without it would mean unsigned sessions.
var ErrMissingSessionSecret = errors.New("app: CMS_SESSION_SECRET is required")

// Application encapsulates the CMS with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	sessionService     *service.SessionService
	destinationService *service.DestinationService
	testimonialService *service.TestimonialService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "voyage-cms",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.SessionSecret == "" {
		return nil, ErrMissingSessionSecret
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("cms starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down cms...")

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

	app.logger.Info("cms stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
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

// initServices initializes the business logic services. The signing secret
// is injected here, at construction time - nothing reads it from the
// environment afterwards.
func (app *Application) initServices() error {
	signer, err := jwtx.NewSignerHS256([]byte(app.cfg.SessionSecret))
	if err != nil {
		return fmt.Errorf("session signer: %w", err)
	}

	app.sessionService = &service.SessionService{
		Store:  app.db,
		Signer: signer,
		TTL:    jwtx.DefaultSessionTTL,
	}
	app.destinationService = &service.DestinationService{Store: app.db}
	app.testimonialService = &service.TestimonialService{Store: app.db}

	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	// The verifier shares the signer's secret; construction cannot fail here
	// because initServices already validated it.
	verifier, _ := jwtx.NewVerifierHS256([]byte(app.cfg.SessionSecret))

	router := httpapi.NewRouter(verifier, BuildVersion, app.db, app.logger)
	router.SessionService = app.sessionService
	router.DestinationService = app.destinationService
	router.TestimonialService = app.testimonialService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              net.JoinHostPort("", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
