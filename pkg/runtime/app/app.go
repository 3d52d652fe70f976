package app

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/dashboard"
	"github.com/de-tools/sales-atlas/pkg/services/window"
	"github.com/de-tools/sales-atlas/pkg/store/pos"
	"github.com/de-tools/sales-atlas/pkg/store/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// App holds the dashboard service together with the window calculator it
// reports on. Both read the same clock, so callers can label results with
// the periods that were queried.
type App struct {
	Settings *config.Settings
	Service  dashboard.Service
	Windows  *window.Calculator

	db *sqlx.DB
}

// Open loads settings from configPath and builds an App from them.
// A nil clock means the system clock.
func Open(ctx context.Context, configPath string, clock window.Clock) (*App, error) {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return nil, err
	}
	return Build(ctx, settings, clock)
}

// OpenAt is Open with the clock pinned to the current instant, so every
// window of one command resolves against the same "now".
func OpenAt(ctx context.Context, configPath string) (*App, error) {
	return Open(ctx, configPath, window.FixedClock(time.Now()))
}

func Build(ctx context.Context, settings *config.Settings, clock window.Clock) (*App, error) {
	logger := zerolog.Ctx(ctx)

	loc, err := settings.Report.Location()
	if err != nil {
		return nil, err
	}

	registry, err := config.NewRegistry(settings.Database.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile registry: %w", err)
	}

	profile, err := registry.GetConfig(ctx, settings.Database.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database profile: %w", err)
	}
	logger.Info().
		Str("profile", profile.Name).
		Str("database", profile.String()).
		Msg("using database profile")

	db, err := postgres.NewDB(ctx, databaseSettings(settings.Database, config.DSN(profile)))
	if err != nil {
		return nil, err
	}

	store, err := pos.NewStore(db, settings.Report.ReliaProductIDs)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create pos store: %w", err)
	}

	a, err := assemble(settings, store, clock, loc)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.db = db
	return a, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func databaseSettings(s config.DatabaseSettings, dsn string) postgres.Settings {
	return postgres.Settings{
		DSN:             dsn,
		MaxOpenConns:    s.MaxOpenConns,
		ConnMaxLifetime: s.ConnMaxLifetime,
	}
}

func assemble(settings *config.Settings, store pos.Store, clock window.Clock, loc *time.Location) (*App, error) {
	if clock == nil {
		clock = window.SystemClock()
	}

	windows := window.NewCalculator(clock, loc)
	svc, err := dashboard.NewService(store, dashboard.Options{
		Windows:            windows,
		MaxParallelQueries: settings.Report.MaxParallelQueries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	return &App{
		Settings: settings,
		Service:  svc,
		Windows:  windows,
	}, nil
}
