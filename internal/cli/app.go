package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/fiches/internal/config"
	"github.com/iudanet/fiches/internal/fiches"
	"github.com/iudanet/fiches/internal/ids"
	"github.com/iudanet/fiches/internal/logging"
	"github.com/iudanet/fiches/internal/models"
	"github.com/iudanet/fiches/internal/persist"
	"github.com/iudanet/fiches/internal/storage"
	"github.com/iudanet/fiches/internal/storage/boltdb"
	"github.com/iudanet/fiches/internal/storage/sqlite"
	"github.com/iudanet/fiches/internal/validation"
)

// app is what a command needs once the configuration is resolved
type app struct {
	cfg    config.Config
	logger *slog.Logger
	store  *fiches.Store
}

// resolveConfig loads the config file and env, then applies flags that were set
func (o *RootOptions) resolveConfig() (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if o.Backend != "" {
		cfg.Backend = o.Backend
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.LogFormat = o.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// withStore opens the configured storage, runs fn and closes the storage
func (o *RootOptions) withStore(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := o.resolveConfig()
	if err != nil {
		return err
	}

	// Логи идут в stderr, чтобы не портить JSON-вывод
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	kv, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	gen, err := ids.New(cfg.IDScheme, nil)
	if err != nil {
		return err
	}

	mirror := persist.NewMirror(kv, logger)
	store := fiches.NewStore(ctx, mirror, logger, fiches.WithIDGenerator(gen))

	logger.Debug("store opened", "backend", cfg.Backend, "db", cfg.DBPath, "fiches", store.Len())

	return fn(ctx, &app{cfg: cfg, logger: logger, store: store})
}

func openStorage(ctx context.Context, cfg config.Config) (storage.KVStorage, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, nil
	default:
		s, err := boltdb.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, nil
	}
}

// lookup returns the fiche with id or a not found error
func (a *app) lookup(id string) (models.Fiche, error) {
	if err := validation.ValidateID(id); err != nil {
		return models.Fiche{}, err
	}

	f, ok := a.store.Get(id)
	if !ok {
		return f, fmt.Errorf("fiche %s: %w", id, fiches.ErrNotFound)
	}
	return f, nil
}
