// Package cli wires configuration, logging, and persistence for the panemux
// command-line interface.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avdl/panemux/internal/config"
	"github.com/avdl/panemux/internal/domain/build"
	"github.com/avdl/panemux/internal/domain/repository"
	"github.com/avdl/panemux/internal/infrastructure/persistence/sqlite"
	"github.com/avdl/panemux/internal/logging"
)

// App bundles the dependencies shared by CLI commands.
type App struct {
	BuildInfo build.Info
	Config    *config.Config
	States    repository.PartStateRepository

	db  *sql.DB
	ctx context.Context
}

// NewApp loads configuration, sets up logging, and opens the state database.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	cfg, err := manager.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	})

	db, err := sqlite.InitDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}

	return &App{
		Config: cfg,
		States: sqlite.NewPartStateRepository(db),
		db:     db,
		ctx:    logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the app context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases the app's resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
