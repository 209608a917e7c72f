package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/tabular"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	reportRepo report.Repository
	recorder   activity.Recorder
	metrics    *metrics.Manager
	logger     *slog.Logger
	now        func() time.Time
}

func NewReportService(reportRepo report.Repository, recorder activity.Recorder, m *metrics.Manager, logger *slog.Logger) report.Service {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		recorder:   recorder,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// build runs one report, records its metrics and hides data-access failures
// behind ErrReportGenerationFailed after logging them.
func (s *ReportServiceImpl) build(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	s.metrics.ObserveReport(name, time.Since(start), err)
	if err != nil {
		s.logger.ErrorContext(ctx, "report generation failed",
			slog.String("report", name),
			slog.String("error", err.Error()),
		)
		return report.ErrReportGenerationFailed
	}
	return nil
}

// Headcount returns active employees per department.
func (s *ReportServiceImpl) Headcount(ctx context.Context) ([]report.DepartmentHeadcount, error) {
	var result []report.DepartmentHeadcount
	err := s.build(ctx, "headcount", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)

		var departments []report.Department
		var active []employee.Employee
		g.Go(func() error {
			var err error
			departments, err = s.reportRepo.ListDepartments(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			active, err = s.reportRepo.ListEmployees(gctx, report.EmployeeQuery{
				Statuses: []employee.Status{employee.StatusActive},
			})
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		result = headcountByDepartment(departments, active)
		return nil
	})
	return result, err
}

// EmployeePerformance returns the ten best scored employees.
func (s *ReportServiceImpl) EmployeePerformance(ctx context.Context) ([]report.EmployeePerformance, error) {
	var result []report.EmployeePerformance
	err := s.build(ctx, "performance", func(ctx context.Context) error {
		employees, err := s.reportRepo.ListEmployees(ctx, report.EmployeeQuery{
			WithPerformanceScore: true,
			OrderBy:              report.OrderByPerformanceDesc,
			Limit:                performanceLimit,
		})
		if err != nil {
			return err
		}
		result = topPerformers(employees)
		return nil
	})
	return result, err
}

// TrainingCompletion rates each required training against active employees.
func (s *ReportServiceImpl) TrainingCompletion(ctx context.Context) ([]report.TrainingCompletion, error) {
	var result []report.TrainingCompletion
	err := s.build(ctx, "training_completion", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)

		var trainings []training.Training
		var assignments []training.Assignment
		var active int
		g.Go(func() error {
			var err error
			trainings, err = s.reportRepo.ListTrainings(gctx, report.TrainingQuery{RequiredOnly: true})
			return err
		})
		g.Go(func() error {
			var err error
			assignments, err = s.reportRepo.ListAssignments(gctx, report.AssignmentQuery{RequiredOnly: true})
			return err
		})
		g.Go(func() error {
			var err error
			active, err = s.reportRepo.CountEmployees(gctx, report.EmployeeQuery{
				Statuses: []employee.Status{employee.StatusActive},
			})
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		result = trainingCompletion(trainings, assignments, active)
		return nil
	})
	return result, err
}

// AttendanceStats counts attendance in an inclusive date range.
func (s *ReportServiceImpl) AttendanceStats(ctx context.Context, req report.AttendanceStatsRequest) (report.AttendanceStats, error) {
	r, err := req.Validate()
	if err != nil {
		return report.AttendanceStats{}, err
	}

	var result report.AttendanceStats
	err = s.build(ctx, "attendance_stats", func(ctx context.Context) error {
		records, err := s.reportRepo.ListAttendance(ctx, report.AttendanceQuery{Range: &r})
		if err != nil {
			return err
		}
		result = attendanceStats(records, r)
		return nil
	})
	return result, err
}

// LeaveStats sums approved leave starting in the requested year.
func (s *ReportServiceImpl) LeaveStats(ctx context.Context, req report.LeaveStatsRequest) (report.LeaveStats, error) {
	if err := req.Validate(); err != nil {
		return report.LeaveStats{}, err
	}

	year := report.DateRange{
		Start: time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(req.Year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	approved := leave.StatusApproved

	var result report.LeaveStats
	err := s.build(ctx, "leave_stats", func(ctx context.Context) error {
		requests, err := s.reportRepo.ListLeaveRequests(ctx, report.LeaveQuery{StartIn: &year, Status: &approved})
		if err != nil {
			return err
		}
		result = leaveStats(requests, req.Year)
		return nil
	})
	return result, err
}

// GenerateCustom validates the report type and filters, records the request on the
// activity trail and builds the report.
func (s *ReportServiceImpl) GenerateCustom(ctx context.Context, callerID string, req report.CustomReportRequest) (report.CustomReport, error) {
	filter, err := report.ParseCustomFilter(req.ReportType, req.Filters)
	if err != nil {
		return report.CustomReport{}, err
	}

	s.recorder.Record(ctx, activity.RecordRequest{
		UserID:      callerID,
		Action:      activity.ActionReport,
		Description: fmt.Sprintf("Generated %s report", req.ReportType),
		EntityType:  activity.EntityReport,
	})

	var data any
	err = s.build(ctx, "custom_"+req.ReportType, func(ctx context.Context) error {
		var err error
		switch f := filter.(type) {
		case report.TurnoverFilter:
			data, err = s.turnover(ctx, f)
		case report.SkillsFilter:
			data, err = s.skills(ctx, f)
		case report.CompensationFilter:
			data, err = s.compensation(ctx, f)
		case report.TrainingFilter:
			data, err = s.training(ctx, f)
		default:
			err = fmt.Errorf("unhandled custom filter %T", filter)
		}
		return err
	})
	if err != nil {
		return report.CustomReport{}, err
	}

	return report.CustomReport{
		ReportType:  filter.CustomType(),
		GeneratedAt: s.now().UTC(),
		Data:        data,
	}, nil
}

func (s *ReportServiceImpl) turnover(ctx context.Context, f report.TurnoverFilter) (report.TurnoverReport, error) {
	g, gctx := errgroup.WithContext(ctx)

	var terminated []employee.Employee
	var total int
	g.Go(func() error {
		var err error
		terminated, err = s.reportRepo.ListEmployees(gctx, report.EmployeeQuery{
			DepartmentID: f.DepartmentID,
			Statuses:     []employee.Status{employee.StatusTerminated},
			UpdatedIn:    f.Range,
			OrderBy:      report.OrderByUpdatedDesc,
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.reportRepo.CountEmployees(gctx, report.EmployeeQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return report.TurnoverReport{}, err
	}

	return turnoverReport(terminated, total), nil
}

func (s *ReportServiceImpl) skills(ctx context.Context, f report.SkillsFilter) (report.SkillsReport, error) {
	q := report.SkillQuery{Category: f.Category, DepartmentID: f.DepartmentID}

	skills, err := s.reportRepo.ListSkills(ctx, q)
	if err != nil {
		return report.SkillsReport{}, err
	}
	links, err := s.reportRepo.ListEmployeeSkills(ctx, q)
	if err != nil {
		return report.SkillsReport{}, err
	}

	return skillsReport(skills, links), nil
}

func (s *ReportServiceImpl) compensation(ctx context.Context, f report.CompensationFilter) (report.CompensationReport, error) {
	employees, err := s.reportRepo.ListEmployees(ctx, report.EmployeeQuery{
		DepartmentID: f.DepartmentID,
		Position:     f.Position,
		WithSalary:   true,
		OrderBy:      report.OrderBySalaryDesc,
	})
	if err != nil {
		return report.CompensationReport{}, err
	}
	return compensationReport(employees), nil
}

func (s *ReportServiceImpl) training(ctx context.Context, f report.TrainingFilter) (report.TrainingReport, error) {
	trainings, err := s.reportRepo.ListTrainings(ctx, report.TrainingQuery{ID: f.TrainingID})
	if err != nil {
		return report.TrainingReport{}, err
	}
	assignments, err := s.reportRepo.ListAssignments(ctx, report.AssignmentQuery{
		TrainingID:   f.TrainingID,
		DepartmentID: f.DepartmentID,
	})
	if err != nil {
		return report.TrainingReport{}, err
	}
	return trainingReport(trainings, assignments), nil
}

// Export renders the requested export as CSV. The EXPORT activity is recorded only
// once the file has been produced.
func (s *ReportServiceImpl) Export(ctx context.Context, callerID string, req report.ExportRequest) (report.ExportFile, error) {
	filter, err := report.ParseExportFilter(req.ReportType, req.Filters)
	if err != nil {
		return report.ExportFile{}, err
	}

	var content []byte
	err = s.build(ctx, "export_"+req.ReportType, func(ctx context.Context) error {
		columns, records, err := s.exportRows(ctx, filter)
		if err != nil {
			return err
		}
		content = tabular.Marshal(columns, records)
		return nil
	})
	if err != nil {
		return report.ExportFile{}, err
	}
	s.metrics.AddExportBytes(req.ReportType, len(content))

	s.recorder.Record(ctx, activity.RecordRequest{
		UserID:      callerID,
		Action:      activity.ActionExport,
		Description: fmt.Sprintf("Exported %s report", req.ReportType),
		EntityType:  activity.EntityReport,
	})

	return report.ExportFile{
		Filename:    fmt.Sprintf("%s_report_%s.csv", req.ReportType, s.now().UTC().Format(validator.DateLayout)),
		ContentType: csvContentType,
		Content:     content,
	}, nil
}

func (s *ReportServiceImpl) exportRows(ctx context.Context, filter report.ExportFilter) ([]tabular.Column, []tabular.Record, error) {
	switch f := filter.(type) {
	case report.EmployeeExportFilter:
		q := report.EmployeeQuery{DepartmentID: f.DepartmentID, Search: f.Search}
		if f.Status != nil {
			q.Statuses = []employee.Status{*f.Status}
		}
		employees, err := s.reportRepo.ListEmployees(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		return employeeColumns, employeeRecords(employees), nil

	case report.AttendanceExportFilter:
		rows, err := s.reportRepo.ListAttendance(ctx, report.AttendanceQuery{
			Range:      f.Range,
			EmployeeID: f.EmployeeID,
			Status:     f.Status,
		})
		if err != nil {
			return nil, nil, err
		}
		return attendanceColumns, attendanceRecords(rows), nil

	case report.LeaveExportFilter:
		requests, err := s.reportRepo.ListLeaveRequests(ctx, report.LeaveQuery{
			StartIn:    f.Range,
			EmployeeID: f.EmployeeID,
			Status:     f.Status,
			Type:       f.Type,
		})
		if err != nil {
			return nil, nil, err
		}
		return leaveColumns, leaveRecords(requests), nil

	case report.TrainingExportFilter:
		assignments, err := s.reportRepo.ListAssignments(ctx, report.AssignmentQuery{TrainingID: f.TrainingID})
		if err != nil {
			return nil, nil, err
		}
		return trainingColumns, trainingRecords(assignments), nil
	}

	return nil, nil, fmt.Errorf("unhandled export filter %T", filter)
}
