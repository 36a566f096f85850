package cmd

import (
	"fmt"

	"loadout-manager/core/bungie"
	"loadout-manager/core/cache"
	"loadout-manager/core/cache/objectstore"
	"loadout-manager/core/cache/sqlstore"
	"loadout-manager/core/config"
	"loadout-manager/core/database"
	"loadout-manager/core/logger"
	"loadout-manager/core/manifest"
	"loadout-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services holds the shared dependencies of every command.
type services struct {
	cfg      *config.Config
	logger   *zap.Logger
	client   storage.Client
	db       *gorm.DB
	cache    cache.Store
	remote   *bungie.Client
	manifest *manifest.Service
}

// bootstrap loads the configuration and wires the manifest coordinator to
// the configured cache backend.
func bootstrap() (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	deps := &services{cfg: cfg, logger: logg}

	if !cfg.Cache.IsValidDriver() {
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.Cache.Driver)
	}

	switch cfg.Cache.Driver {
	case cache.DriverStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		deps.client = client
		deps.cache = objectstore.New(client, cfg.Storage.Bucket, cfg.Cache.Prefix)
	case cache.DriverDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		deps.db = db
		deps.cache = sqlstore.New(db)
	case cache.DriverMemory:
		deps.cache = cache.NewMemory()
	case cache.DriverNone:
		logg.Warn("Manifest cache disabled, every start downloads the manifest")
	}

	remote, err := bungie.NewClient(cfg.Bungie)
	if err != nil {
		return nil, fmt.Errorf("failed to create bungie client: %w", err)
	}
	deps.remote = remote

	deps.manifest = manifest.NewService(remote, deps.cache, cfg.Manifest.Components, logg)

	logg.Debug("Services ready",
		zap.String("cache", cfg.Cache.Driver),
		zap.String("locale", cfg.Bungie.Locale))
	return deps, nil
}
