package main

import (
	"context"
	"encoding/json"

	resdto "stand-ledger/internal/handler/dto/response"
	"stand-ledger/internal/usecase/queries"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the sales summary as JSON",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, _ []string) error {
	var q queries.SaleQueries
	return runCore(cmd.Context(), func(ctx context.Context) error {
		view, err := q.GetSummary(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resdto.FromSummaryView(view))
	}, &q)
}
