package report

import "errors"

var (
	ErrInvalidReportType      = errors.New("invalid report type")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
