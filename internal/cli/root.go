// Package cli implements the hrctl command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the current version of hrctl
var Version = "0.1.0"

type rootOptions struct {
	userID string
}

// NewRootCmd builds the hrctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hrctl",
		Short: "HR reporting from the command line",
		Long: `hrctl runs the same report and export pipeline as the API against the configured database.

Configuration is read the same way as the API server: defaults, then the YAML file
named by HR_CONFIG, then HR_* environment variables (a .env file is honoured).

Examples:
  hrctl export employees --filters '{"status":"ACTIVE"}'
  hrctl report turnover --filters '{"startDate":"2025-01-01","endDate":"2025-06-30"}' --format json
  hrctl token --role HR --email hr@example.com`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.userID, "user-id", "hrctl", "User id recorded on the activity trail and placed in minted tokens")

	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newReportCmd(opts))
	cmd.AddCommand(newTokenCmd(opts))
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
