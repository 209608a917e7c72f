package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/tabular"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
)

const (
	csvContentType = "text/csv"
	clockLayout    = "15:04"
)

var employeeColumns = []tabular.Column{
	{Key: "id", Title: "Employee ID"},
	{Key: "firstName", Title: "First Name"},
	{Key: "lastName", Title: "Last Name"},
	{Key: "email", Title: "Email"},
	{Key: "department", Title: "Department"},
	{Key: "position", Title: "Position"},
	{Key: "status", Title: "Status"},
	{Key: "hireDate", Title: "Hire Date"},
}

var attendanceColumns = []tabular.Column{
	{Key: "date", Title: "Date"},
	{Key: "employeeId", Title: "Employee ID"},
	{Key: "name", Title: "Employee Name"},
	{Key: "department", Title: "Department"},
	{Key: "checkIn", Title: "Check In"},
	{Key: "checkOut", Title: "Check Out"},
	{Key: "status", Title: "Status"},
	{Key: "notes", Title: "Notes"},
}

var leaveColumns = []tabular.Column{
	{Key: "employeeId", Title: "Employee ID"},
	{Key: "name", Title: "Employee Name"},
	{Key: "department", Title: "Department"},
	{Key: "type", Title: "Leave Type"},
	{Key: "startDate", Title: "Start Date"},
	{Key: "endDate", Title: "End Date"},
	{Key: "duration", Title: "Duration (Days)"},
	{Key: "status", Title: "Status"},
	{Key: "approvedBy", Title: "Approved By"},
	{Key: "reason", Title: "Reason"},
}

var trainingColumns = []tabular.Column{
	{Key: "trainingTitle", Title: "Training Title"},
	{Key: "trainingType", Title: "Training Type"},
	{Key: "employeeId", Title: "Employee ID"},
	{Key: "name", Title: "Employee Name"},
	{Key: "email", Title: "Email"},
	{Key: "department", Title: "Department"},
	{Key: "status", Title: "Status"},
	{Key: "progress", Title: "Progress"},
	{Key: "startDate", Title: "Start Date"},
	{Key: "completionDate", Title: "Completion Date"},
	{Key: "score", Title: "Score"},
}

func formatDate(t time.Time) string {
	return t.UTC().Format(validator.DateLayout)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(clockLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func employeeRecords(employees []employee.Employee) []tabular.Record {
	records := make([]tabular.Record, 0, len(employees))
	for _, e := range employees {
		records = append(records, tabular.Record{
			"id":         e.EmployeeCode,
			"firstName":  e.FirstName,
			"lastName":   e.LastName,
			"email":      e.Email,
			"department": e.DepartmentName,
			"position":   e.Position,
			"status":     string(e.Status),
			"hireDate":   formatDate(e.HireDate),
		})
	}
	return records
}

func attendanceRecords(rows []attendance.Record) []tabular.Record {
	records := make([]tabular.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, tabular.Record{
			"date":       formatDate(r.Date),
			"employeeId": r.EmployeeCode,
			"name":       r.EmployeeName,
			"department": r.DepartmentName,
			"checkIn":    formatClock(r.CheckIn),
			"checkOut":   formatClock(r.CheckOut),
			"status":     string(r.Status),
			"notes":      deref(r.Notes),
		})
	}
	return records
}

func leaveRecords(requests []leave.Request) []tabular.Record {
	records := make([]tabular.Record, 0, len(requests))
	for _, r := range requests {
		records = append(records, tabular.Record{
			"employeeId": r.EmployeeCode,
			"name":       r.EmployeeName,
			"department": r.DepartmentName,
			"type":       string(r.Type),
			"startDate":  formatDate(r.StartDate),
			"endDate":    formatDate(r.EndDate),
			"duration":   r.Duration,
			"status":     string(r.Status),
			"approvedBy": deref(r.ApproverName),
			"reason":     deref(r.Reason),
		})
	}
	return records
}

func trainingRecords(assignments []training.Assignment) []tabular.Record {
	records := make([]tabular.Record, 0, len(assignments))
	for _, a := range assignments {
		rec := tabular.Record{
			"trainingTitle":  a.TrainingTitle,
			"trainingType":   string(a.TrainingType),
			"employeeId":     deref(a.EmployeeCode),
			"name":           a.EmployeeName,
			"email":          a.Email,
			"department":     a.DepartmentName,
			"status":         string(a.Status),
			"progress":       fmt.Sprintf("%d%%", a.Progress),
			"startDate":      formatOptionalDate(a.StartedAt),
			"completionDate": formatOptionalDate(a.CompletedAt),
			"score":          "",
		}
		if a.Score != nil {
			rec["score"] = *a.Score
		}
		records = append(records, rec)
	}
	return records
}
