package main

import (
	"context"
	"log/slog"

	"stand-ledger/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var rootCmd = &cobra.Command{
	Use:   "stand",
	Short: "Point-of-sale ledger for a vendor stand",
	Long: `stand records counter sales and customer orders for one vendor stand and
reports how much of the initial investment has been recouped.

Configuration is read from the environment (STORE_DRIVER, SQLITE_PATH, DB_*,
JWT_SECRET, CATALOG_PATH, INITIAL_INVESTMENT, ...).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(summaryCmd)

	tokenCmd.Flags().String("staff", "", "Staff identity to put in the token")
	_ = tokenCmd.MarkFlagRequired("staff")
}

// runCore starts the core graph without the HTTP layer, fills targets from it and runs fn.
func runCore(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(targets...),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Warn("failed to stop application", "error", err)
		}
	}()
	return fn(ctx)
}
