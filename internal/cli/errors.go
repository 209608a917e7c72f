package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
)

// describe turns report errors into messages fit for a terminal.
func describe(err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := verrs.ToMap()
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, len(keys))
		for i, k := range keys {
			lines[i] = "  " + k + ": " + fields[k]
		}
		return fmt.Errorf("invalid filters:\n%s", strings.Join(lines, "\n"))
	case errors.Is(err, report.ErrInvalidReportType):
		return fmt.Errorf("%w (custom: %s; export: %s)", err,
			strings.Join(report.CustomTypes, ", "), strings.Join(report.ExportTypes, ", "))
	default:
		return err
	}
}
