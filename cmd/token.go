package main

import (
	"fmt"

	"stand-ledger/cmd/bootstrap"
	"stand-ledger/internal/pkg/config"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a staff session token",
	Long: `Print a signed staff session token. Send it as "Authorization: Bearer <token>"
or in the staff_session cookie to reach the staff routes.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func runToken(cmd *cobra.Command, _ []string) error {
	staffID, _ := cmd.Flags().GetString("staff")

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	svc, err := bootstrap.NewJWTService(cfg)
	if err != nil {
		return err
	}
	token, err := svc.GenerateToken(staffID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
