// Package server wires the store: it opens the database, applies
// migrations, builds the services and runs the gRPC server until the
// process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/studydesk/internal/logging"
	"github.com/dmitrijs2005/studydesk/internal/server/config"
	"github.com/dmitrijs2005/studydesk/internal/server/models"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studydesk/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/studydesk/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	userService   *services.UserService
	paperService  *services.PaperService
	wordService   *services.WordService
	exportService *services.ExportService
}

// NewApp opens the configured database and builds the services. When S3 is
// configured the export service writes to it; otherwise export is disabled.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, rm, err := repomanager.Open(ctx, c.Driver, c.DSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var store services.ObjectStore
	if c.ExportEnabled() {
		s3, err := services.NewS3ObjectStore(ctx, c)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		store = s3
	}

	return &App{
		config:        c,
		logger:        logger.With("module", "app"),
		db:            db,
		repomanager:   rm,
		userService:   services.NewUserService(db, rm, c),
		paperService:  services.NewPaperService(db, rm),
		wordService:   services.NewWordService(db, rm),
		exportService: services.NewExportService(db, rm, store, c.ExportURLTTL),
	}, nil
}

// Migrate applies pending migrations for the configured driver.
func (app *App) Migrate(ctx context.Context) error {
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	app.logger.Info(ctx, "Migrations applied", "driver", app.config.Driver)
	return nil
}

// AddUser registers an account directly, bypassing the gRPC surface.
func (app *App) AddUser(ctx context.Context, username, password string) (*models.User, error) {
	return app.userService.Register(ctx, username, password)
}

func (app *App) Close() error {
	return app.db.Close()
}

// Run migrates the database and serves until ctx is cancelled or the
// process receives SIGINT, SIGTERM or SIGQUIT.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.Driver, "export", app.config.ExportEnabled())

	if err := app.Migrate(ctx); err != nil {
		return err
	}

	s := gs.NewGRPCServer(app.config.Addr, app.config.APIKey, app.logger,
		app.userService, app.paperService, app.wordService, app.exportService)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Run(ctx)
	})

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}
