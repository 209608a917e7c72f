package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// REQUESTS
// ========================================

// CustomReportRequest is the body of POST /reports/custom.
type CustomReportRequest struct {
	ReportType string          `json:"reportType"`
	Filters    json.RawMessage `json:"filters,omitempty"`
}

// ExportRequest is the body of POST /reports/export.
type ExportRequest struct {
	ReportType string          `json:"reportType"`
	Filters    json.RawMessage `json:"filters,omitempty"`
}

type AttendanceStatsRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Validate parses the inclusive range. Both dates are required.
func (r *AttendanceStatsRequest) Validate() (DateRange, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	}
	if validator.IsEmpty(r.EndDate) {
		errs.Add("end_date", "end_date is required")
	}
	start := validator.DateField(&errs, "start_date", r.StartDate)
	end := validator.DateField(&errs, "end_date", r.EndDate)
	if start != nil && end != nil && end.Before(*start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if err := errs.Err(); err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: *start, End: *end}, nil
}

type LeaveStatsRequest struct {
	Year int `json:"year"`
}

func (r *LeaveStatsRequest) Validate() error {
	var errs validator.ValidationErrors

	maxYear := time.Now().Year() + 1
	if r.Year < 1970 || r.Year > maxYear {
		errs.Add("year", fmt.Sprintf("year must be between 1970 and %d", maxYear))
	}

	return errs.Err()
}

// ========================================
// STANDARD REPORTS
// ========================================

type DepartmentHeadcount struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type EmployeePerformance struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employeeCode"`
	Name             string  `json:"name"`
	Department       string  `json:"department"`
	Position         string  `json:"position"`
	PerformanceScore float64 `json:"performanceScore"`
}

type TrainingCompletion struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	CompletionRate int    `json:"completionRate"`
	CompletedCount int    `json:"completedCount"`
	TotalEmployees int    `json:"totalEmployees"`
}

// AttendanceStats omits status/department combinations with no records.
type AttendanceStats struct {
	StartDate        string                    `json:"startDate"`
	EndDate          string                    `json:"endDate"`
	StatusCounts     map[string]int            `json:"statusCounts"`
	DepartmentCounts map[string]map[string]int `json:"departmentCounts"`
	TotalRecords     int                       `json:"totalRecords"`
}

type MonthlyLeave struct {
	Month    int `json:"month"` // 1..12
	Requests int `json:"requests"`
	Days     int `json:"days"`
}

type LeaveStats struct {
	Year          int            `json:"year"`
	TypeCounts    map[string]int `json:"typeCounts"` // leave days per type
	MonthlyData   []MonthlyLeave `json:"monthlyData"`
	TotalRequests int            `json:"totalRequests"`
	TotalDays     int            `json:"totalDays"`
}

// ========================================
// CUSTOM REPORTS
// ========================================

// CustomReport wraps the result of one custom report kind.
type CustomReport struct {
	ReportType  CustomType `json:"reportType"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Data        any        `json:"data"`
}

type TurnoverEmployee struct {
	ID              string  `json:"id"`
	EmployeeCode    string  `json:"employeeCode"`
	Name            string  `json:"name"`
	Department      string  `json:"department"`
	Position        string  `json:"position"`
	HireDate        string  `json:"hireDate"`
	TerminationDate *string `json:"terminationDate"`
}

type TurnoverReport struct {
	TerminatedEmployees []TurnoverEmployee `json:"terminatedEmployees"`
	TerminatedCount     int                `json:"terminatedCount"`
	TotalEmployees      int                `json:"totalEmployees"`
	TurnoverRate        float64            `json:"turnoverRate"`
}

type SkillHolder struct {
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Proficiency int    `json:"proficiency"`
}

type SkillSummary struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Category           string        `json:"category"`
	EmployeeCount      int           `json:"employeeCount"`
	AverageProficiency int           `json:"averageProficiency"`
	Employees          []SkillHolder `json:"employees"`
}

type SkillsReport struct {
	Skills      []SkillSummary `json:"skills"`
	TotalSkills int            `json:"totalSkills"`
}

type CompensationEmployee struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employeeCode"`
	Name         string          `json:"name"`
	Department   string          `json:"department"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
}

// GroupStats aggregates salaries of one department or position.
type GroupStats struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Avg   decimal.Decimal `json:"avg"`
}

type CompensationReport struct {
	Employees       []CompensationEmployee `json:"employees"`
	TotalEmployees  int                    `json:"totalEmployees"`
	AverageSalary   decimal.Decimal        `json:"averageSalary"`
	DepartmentStats map[string]GroupStats  `json:"departmentStats"`
	PositionStats   map[string]GroupStats  `json:"positionStats"`
}

type ScoredEmployee struct {
	EmployeeID       string  `json:"employeeId"`
	Name             string  `json:"name"`
	Department       string  `json:"department"`
	PerformanceScore float64 `json:"performanceScore"`
}

type TrainingSummary struct {
	ID                  string           `json:"id"`
	Title               string           `json:"title"`
	Type                string           `json:"type"`
	TotalAssigned       int              `json:"totalAssigned"`
	Completed           int              `json:"completed"`
	CompletionRate      int              `json:"completionRate"`
	EmployeesWithScores []ScoredEmployee `json:"employeesWithScores"`
}

type TrainingReport struct {
	Trainings []TrainingSummary `json:"trainings"`
}

// ========================================
// EXPORT
// ========================================

// ExportFile is a fully materialized export.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
