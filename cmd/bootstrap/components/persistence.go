package components

import (
	"context"
	"fmt"
	"log/slog"

	"stand-ledger/internal/infra/db"
	"stand-ledger/internal/infra/sqlite"
	"stand-ledger/internal/infra/uow"
	"stand-ledger/internal/pkg/config"
	"stand-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the backend selected by STORE_DRIVER and applies its schema.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(context.Background(), pool); err != nil {
			cleanup()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("using postgres store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
		return uow.NewPostgresUoW(pool, logger), nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLite, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		logger.Info("using sqlite store", "path", cfg.SQLite.Path)
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
