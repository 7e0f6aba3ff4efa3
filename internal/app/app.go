// Package app wires configuration, storage, handlers and routes into a
// runnable trigger console service.
package app

import (
	"fmt"

	"trigger-console/internal/common/logging"
	"trigger-console/internal/common/ratelimit"
	"trigger-console/internal/config"
	"trigger-console/internal/handlers"
	"trigger-console/internal/storage"
	"trigger-console/internal/storage/postgres"
	"trigger-console/internal/storage/sqlite"
)

// App holds the initialized application components.
type App struct {
	Config      *config.Config
	Storage     storage.Storage
	Handlers    *handlers.Handlers
	RateLimiter ratelimit.Limiter
}

// New initializes storage and handlers from the validated configuration.
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initStorage(); err != nil {
		return nil, err
	}
	if err := app.initRateLimiter(); err != nil {
		app.Storage.Close()
		return nil, err
	}

	app.Handlers = handlers.New(app.Storage, cfg)
	return app, nil
}

// Cleanup releases resources held by the application.
func (app *App) Cleanup() {
	if app.Storage != nil {
		if err := app.Storage.Close(); err != nil {
			logging.Warn("failed to close storage", logging.Err(err))
		}
	}
}

func (app *App) initStorage() error {
	var (
		store storage.Storage
		err   error
	)

	switch app.Config.DatabaseType {
	case "postgres":
		logging.Info("Database: PostgreSQL",
			logging.String("host", app.Config.PostgresHost),
			logging.String("port", app.Config.PostgresPort),
			logging.String("database", app.Config.PostgresDB),
		)
		store, err = postgres.New(&postgres.Config{
			Host:     app.Config.PostgresHost,
			Port:     app.Config.PostgresPort,
			Database: app.Config.PostgresDB,
			User:     app.Config.PostgresUser,
			Password: app.Config.PostgresPassword,
			SSLMode:  app.Config.PostgresSSLMode,
		})
	default:
		logging.Info("Database: SQLite", logging.String("path", app.Config.DatabasePath))
		store, err = sqlite.New(&sqlite.Config{Path: app.Config.DatabasePath})
	}
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.Storage = store
	return nil
}

func (app *App) initRateLimiter() error {
	limiterConfig := ratelimit.Config{
		RequestsPerSecond: app.Config.RateLimitRPS,
		BurstSize:         app.Config.RateLimitBurst,
		Enabled:           app.Config.RateLimitEnabled,
	}

	limiter, err := ratelimit.NewLimiter(limiterConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	app.RateLimiter = limiter
	return nil
}
