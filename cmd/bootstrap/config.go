package bootstrap

import (
	"stand-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads the environment once. Provisioning depends on its catalog slice only.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CatalogConfig { return cfg.Catalog },
	),
)
