package cli

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/config"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

func newTokenCmd(root *rootOptions) *cobra.Command {
	var role, email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		Long:  "Mint an access token signed with the configured JWT secret, for calling the API in development.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := user.Role(role)
			if !r.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).
				GenerateAccessToken(root.userID, email, r)
			if err != nil {
				return fmt.Errorf("mint token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(user.RoleHR), "Role claim: ADMIN | HR | MANAGER | EMPLOYEE")
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	return cmd
}
