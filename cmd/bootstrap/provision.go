package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra/catalog"
	"stand-ledger/internal/pkg/config"
	"stand-ledger/internal/usecase/commands"

	"go.uber.org/fx"
)

// ProvisionModule seeds the catalog and investment when the application starts.
var ProvisionModule = fx.Module("provision",
	fx.Invoke(provisionOnStart),
)

func provisionOnStart(lc fx.Lifecycle, cfg config.CatalogConfig, p commands.ProvisionCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := Provision(ctx, cfg, p)
			if err != nil {
				logger.Error("provisioning failed", "error", err.Error())
			}
			return err
		},
	})
}

// Provision loads the configured catalog and hands it to the provisioning use case.
func Provision(ctx context.Context, cfg config.CatalogConfig, p commands.ProvisionCommands) (*commands.ProvisionResult, error) {
	items, err := catalog.Load(cfg.Path)
	if err != nil {
		return nil, err
	}
	investment, err := sale.ParseMoney(cfg.InitialInvestment)
	if err != nil {
		return nil, fmt.Errorf("invalid INITIAL_INVESTMENT %q: %w", cfg.InitialInvestment, err)
	}
	return p.Provision(ctx, items, investment)
}
