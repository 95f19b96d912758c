package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/internal/config"
	"github.com/rosterboard/shiftboard/pkg/core/indictment"
	"github.com/rosterboard/shiftboard/pkg/core/severity"
	"github.com/rosterboard/shiftboard/pkg/core/shiftevent"
	"github.com/rosterboard/shiftboard/pkg/db"
	"github.com/rosterboard/shiftboard/pkg/postgres"
	"github.com/rosterboard/shiftboard/pkg/rosterfile"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env       string
	Cfg       *config.Config
	Store     db.ShiftStore
	Extractor *indictment.Extractor
	Colorizer *severity.Colorizer
	Renderer  *shiftevent.Renderer
	Logger    *zap.Logger
	Ctx       context.Context

	closeStore func()
}

// NewAppContext builds the store and the event renderer from the loaded configuration
func NewAppContext(ctx context.Context, env string, cfg *config.Config, logger *zap.Logger) (*AppContext, error) {
	app := &AppContext{
		Env:    env,
		Cfg:    cfg,
		Logger: logger,
		Ctx:    ctx,
	}

	var err error
	app.Extractor, app.Colorizer, err = NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	app.Renderer = shiftevent.NewRenderer(app.Extractor, app.Colorizer)
	logger.Debug("Renderer configured",
		zap.String("week_start", cfg.WeekStartDay().String()),
		zap.Int("tier_overrides", len(cfg.CategoryTiers)),
		zap.Int("palette_overrides", len(cfg.Palette)))

	app.Store, app.closeStore, err = OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return app, nil
}

// NewEngine builds the indictment extractor and colorizer described by the configuration
func NewEngine(cfg *config.Config) (*indictment.Extractor, *severity.Colorizer, error) {
	tiers := make(map[string]indictment.Tier, len(cfg.CategoryTiers))
	for name, tier := range cfg.CategoryTiers {
		tiers[name] = indictment.Tier(tier)
	}

	extractor := indictment.NewExtractor(
		indictment.WithWeekStart(cfg.WeekStartDay()),
		indictment.WithTiers(tiers),
	)
	if err := extractor.ValidateTiers(); err != nil {
		return nil, nil, fmt.Errorf("invalid categoryTiers: %w", err)
	}

	palette := make(severity.Palette, len(cfg.Palette))
	for class, value := range cfg.Palette {
		palette[severity.Class(class)] = value
	}

	return extractor, severity.NewColorizer(palette), nil
}

// OpenStore opens the configured shift store. The returned func releases it.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.ShiftStore, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		logger.Info("Connecting to database")
		database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		applied, err := database.RunMigrations(ctx)
		if err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		for _, name := range applied {
			logger.Info("Migration applied", zap.String("migration", name))
		}
		logger.Debug("Database ready", zap.Int("migrations_applied", len(applied)))

		return database, database.Close, nil

	case config.StoreFile:
		logger.Info("Opening roster file", zap.String("path", cfg.RosterFile))
		store, err := rosterfile.Open(cfg.RosterFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open roster file: %w", err)
		}
		return store, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Close releases the store
func (a *AppContext) Close() {
	if a.closeStore != nil {
		a.closeStore()
	}
}
