package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/spf13/cobra"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var filters, out string

	cmd := &cobra.Command{
		Use:       "export <type>",
		Short:     "Export a report as CSV",
		Long:      "Export employees, attendance, leave or training data as CSV. Use --out - to write to stdout.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: report.ExportTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			file, err := a.reports.Export(cmd.Context(), root.userID, report.ExportRequest{
				ReportType: args[0],
				Filters:    json.RawMessage(filters),
			})
			if err != nil {
				return describe(err)
			}

			if out == "-" {
				_, err := cmd.OutOrStdout().Write(file.Content)
				return err
			}
			if out == "" {
				out = file.Filename
			}
			if err := os.WriteFile(out, file.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(file.Content), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&filters, "filters", "{}", "Export filters as a JSON object")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: <type>_report_<date>.csv, - for stdout)")
	return cmd
}
