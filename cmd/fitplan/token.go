package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"example.com/fitplan/internal/auth"
)

var (
	tokenSubject string
	tokenTenant  string
	tokenScopes  []string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development bearer token for the API",
	Long: `Sign an HS256 token with JWT_SECRET and JWT_ISSUER for local testing.

EXAMPLE:

  curl -H "Authorization: Bearer $(fitplan token --subject athlete-1 --tenant demo)" \
       -d @answers.json localhost:8095/v1/programs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := auth.Sign(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}, tokenSubject, tokenTenant, tokenScopes, tokenTTL)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "dev-user", "token subject (user id)")
	tokenCmd.Flags().StringVar(&tokenTenant, "tenant", "dev-tenant", "tenant id claim")
	tokenCmd.Flags().StringSliceVar(&tokenScopes, "scope", []string{auth.ScopeProgramsRead, auth.ScopeProgramsWrite}, "granted scopes")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
