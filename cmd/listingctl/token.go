package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"servicemart/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token <business-id>",
	Short: "Issue a bearer token for a business using the configured JWT secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		businessID := strings.TrimSpace(args[0])
		if businessID == "" {
			return errors.New("business ID is required")
		}

		token, expiresAt, err := auth.NewTokenManager(&cfg.JWT).Issue(businessID)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"access_token": token,
				"expires_at":   expiresAt.Format(time.RFC3339),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
