package main

import (
	"context"
	"fmt"

	"stand-ledger/cmd/bootstrap"
	"stand-ledger/internal/pkg/config"
	"stand-ledger/internal/usecase/commands"

	"github.com/spf13/cobra"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create the schema and seed the catalog and initial investment",
	Long: `Apply the schema, add catalog items that are missing and store the initial
investment when none is set yet. Running it again changes nothing.`,
	Args: cobra.NoArgs,
	RunE: runProvision,
}

func runProvision(cmd *cobra.Command, _ []string) error {
	var (
		cfg config.CatalogConfig
		p   commands.ProvisionCommands
	)
	return runCore(cmd.Context(), func(ctx context.Context) error {
		res, err := bootstrap.Provision(ctx, cfg, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "items added: %d\ninvestment set: %t\n", res.ItemsAdded, res.InvestmentSet)
		return nil
	}, &cfg, &p)
}
