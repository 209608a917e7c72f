package report

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
)

// CustomType tags the custom reports.
type CustomType string

const (
	CustomTurnover     CustomType = "turnover"
	CustomSkills       CustomType = "skills"
	CustomCompensation CustomType = "compensation"
	CustomTraining     CustomType = "training"
)

var CustomTypes = []string{
	string(CustomTurnover),
	string(CustomSkills),
	string(CustomCompensation),
	string(CustomTraining),
}

// ExportType tags the CSV exports.
type ExportType string

const (
	ExportEmployees  ExportType = "employees"
	ExportAttendance ExportType = "attendance"
	ExportLeave      ExportType = "leave"
	ExportTraining   ExportType = "training"
)

var ExportTypes = []string{
	string(ExportEmployees),
	string(ExportAttendance),
	string(ExportLeave),
	string(ExportTraining),
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// EndExclusive is the first instant after the range, for timestamp comparisons.
func (r DateRange) EndExclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// CustomFilter is implemented by exactly one filter struct per CustomType.
type CustomFilter interface {
	CustomType() CustomType
}

type TurnoverFilter struct {
	DepartmentID *string
	Range        *DateRange // window on the employee's last update
}

type SkillsFilter struct {
	DepartmentID *string
	Category     *string
}

type CompensationFilter struct {
	DepartmentID *string
	Position     *string
}

type TrainingFilter struct {
	TrainingID   *string
	DepartmentID *string
}

func (TurnoverFilter) CustomType() CustomType     { return CustomTurnover }
func (SkillsFilter) CustomType() CustomType       { return CustomSkills }
func (CompensationFilter) CustomType() CustomType { return CustomCompensation }
func (TrainingFilter) CustomType() CustomType     { return CustomTraining }

// ExportFilter is implemented by exactly one filter struct per ExportType.
type ExportFilter interface {
	ExportType() ExportType
}

type EmployeeExportFilter struct {
	DepartmentID *string
	Status       *employee.Status
	Search       *string // case-insensitive match on name, email or employee code
}

type AttendanceExportFilter struct {
	Range      *DateRange
	EmployeeID *string
	Status     *attendance.Status
}

type LeaveExportFilter struct {
	Range      *DateRange // on start date
	EmployeeID *string
	Status     *leave.Status
	Type       *leave.Type
}

type TrainingExportFilter struct {
	TrainingID *string
}

func (EmployeeExportFilter) ExportType() ExportType   { return ExportEmployees }
func (AttendanceExportFilter) ExportType() ExportType { return ExportAttendance }
func (LeaveExportFilter) ExportType() ExportType      { return ExportLeave }
func (TrainingExportFilter) ExportType() ExportType   { return ExportTraining }

// rawFilters is the wire shape of the "filters" object shared by all report kinds.
// Keys a kind does not use are ignored.
type rawFilters struct {
	DepartmentID string `json:"departmentId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Category     string `json:"category"`
	Position     string `json:"position"`
	TrainingID   string `json:"trainingId"`
	EmployeeID   string `json:"employeeId"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	Search       string `json:"search"`
}

func decodeFilters(raw json.RawMessage) (rawFilters, error) {
	var f rawFilters
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return f, nil
	}
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return f, validator.ValidationErrors{{Field: "filters", Message: "filters must be an object of string values"}}
	}
	return f, nil
}

// ParseCustomFilter validates the report type and decodes its filter. An unknown
// type yields ErrInvalidReportType; bad filter values yield validator.ValidationErrors.
func ParseCustomFilter(reportType string, raw json.RawMessage) (CustomFilter, error) {
	if !validator.IsInSlice(reportType, CustomTypes) {
		return nil, ErrInvalidReportType
	}
	f, err := decodeFilters(raw)
	if err != nil {
		return nil, err
	}

	var errs validator.ValidationErrors
	var filter CustomFilter
	switch CustomType(reportType) {
	case CustomTurnover:
		filter = TurnoverFilter{
			DepartmentID: validator.UUIDField(&errs, "departmentId", f.DepartmentID),
			Range:        dateRange(&errs, f.StartDate, f.EndDate),
		}
	case CustomSkills:
		filter = SkillsFilter{
			DepartmentID: validator.UUIDField(&errs, "departmentId", f.DepartmentID),
			Category:     validator.OptionalString(f.Category),
		}
	case CustomCompensation:
		filter = CompensationFilter{
			DepartmentID: validator.UUIDField(&errs, "departmentId", f.DepartmentID),
			Position:     validator.OptionalString(f.Position),
		}
	case CustomTraining:
		filter = TrainingFilter{
			TrainingID:   validator.UUIDField(&errs, "trainingId", f.TrainingID),
			DepartmentID: validator.UUIDField(&errs, "departmentId", f.DepartmentID),
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return filter, nil
}

// ParseExportFilter is ParseCustomFilter for export types.
func ParseExportFilter(reportType string, raw json.RawMessage) (ExportFilter, error) {
	if !validator.IsInSlice(reportType, ExportTypes) {
		return nil, ErrInvalidReportType
	}
	f, err := decodeFilters(raw)
	if err != nil {
		return nil, err
	}

	var errs validator.ValidationErrors
	var filter ExportFilter
	switch ExportType(reportType) {
	case ExportEmployees:
		ef := EmployeeExportFilter{
			DepartmentID: validator.UUIDField(&errs, "departmentId", f.DepartmentID),
			Search:       validator.OptionalString(f.Search),
		}
		if s := validator.EnumField(&errs, "status", f.Status, employee.Statuses); s != nil {
			st := employee.Status(*s)
			ef.Status = &st
		}
		filter = ef
	case ExportAttendance:
		af := AttendanceExportFilter{
			Range:      dateRange(&errs, f.StartDate, f.EndDate),
			EmployeeID: validator.UUIDField(&errs, "employeeId", f.EmployeeID),
		}
		if s := validator.EnumField(&errs, "status", f.Status, attendance.Statuses); s != nil {
			st := attendance.Status(*s)
			af.Status = &st
		}
		filter = af
	case ExportLeave:
		lf := LeaveExportFilter{
			Range:      dateRange(&errs, f.StartDate, f.EndDate),
			EmployeeID: validator.UUIDField(&errs, "employeeId", f.EmployeeID),
		}
		if s := validator.EnumField(&errs, "status", f.Status, leave.Statuses); s != nil {
			st := leave.Status(*s)
			lf.Status = &st
		}
		if t := validator.EnumField(&errs, "type", f.Type, leave.Types); t != nil {
			lt := leave.Type(*t)
			lf.Type = &lt
		}
		filter = lf
	case ExportTraining:
		filter = TrainingExportFilter{
			TrainingID: validator.UUIDField(&errs, "trainingId", f.TrainingID),
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return filter, nil
}

// dateRange requires both bounds or neither.
func dateRange(errs *validator.ValidationErrors, startDate, endDate string) *DateRange {
	if validator.IsEmpty(startDate) && validator.IsEmpty(endDate) {
		return nil
	}
	if validator.IsEmpty(startDate) {
		errs.Add("startDate", "startDate is required when endDate is set")
		return nil
	}
	if validator.IsEmpty(endDate) {
		errs.Add("endDate", "endDate is required when startDate is set")
		return nil
	}
	start := validator.DateField(errs, "startDate", startDate)
	end := validator.DateField(errs, "endDate", endDate)
	if start == nil || end == nil {
		return nil
	}
	if end.Before(*start) {
		errs.Add("endDate", "endDate must not be before startDate")
		return nil
	}
	return &DateRange{Start: *start, End: *end}
}
