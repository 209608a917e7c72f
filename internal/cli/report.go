package cli

import (
	"encoding/json"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/spf13/cobra"
)

func newReportCmd(root *rootOptions) *cobra.Command {
	var filters string
	format := formatYAML

	cmd := &cobra.Command{
		Use:       "report <type>",
		Short:     "Generate a custom report",
		Long:      "Generate a custom report (turnover, skills, compensation, training) and print it.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: report.CustomTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.reports.GenerateCustom(cmd.Context(), root.userID, report.CustomReportRequest{
				ReportType: args[0],
				Filters:    json.RawMessage(filters),
			})
			if err != nil {
				return describe(err)
			}
			return format.write(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&filters, "filters", "{}", "Report filters as a JSON object")
	cmd.Flags().Var(&format, "format", "Output format: yaml | json")
	return cmd
}
