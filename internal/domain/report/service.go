package report

import "context"

type Service interface {
	Headcount(ctx context.Context) ([]DepartmentHeadcount, error)
	EmployeePerformance(ctx context.Context) ([]EmployeePerformance, error)
	TrainingCompletion(ctx context.Context) ([]TrainingCompletion, error)
	AttendanceStats(ctx context.Context, req AttendanceStatsRequest) (AttendanceStats, error)
	LeaveStats(ctx context.Context, req LeaveStatsRequest) (LeaveStats, error)

	// GenerateCustom records one REPORT activity for callerID once the type and
	// filters are valid, then builds the report.
	GenerateCustom(ctx context.Context, callerID string, req CustomReportRequest) (CustomReport, error)

	// Export builds the CSV and records one EXPORT activity for callerID.
	Export(ctx context.Context, callerID string, req ExportRequest) (ExportFile, error)
}
