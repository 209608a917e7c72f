package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		part, whole int
		want        int
	}{
		{"zero whole", 3, 0, 0},
		{"exact", 1, 4, 25},
		{"rounds half up", 1, 8, 13},
		{"rounds down", 1, 3, 33},
		{"all", 7, 7, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, percent(tt.part, tt.whole))
		})
	}
}

func TestHeadcountByDepartment(t *testing.T) {
	departments := []report.Department{
		{ID: "d1", Name: "Engineering"},
		{ID: "d2", Name: "Finance"},
		{ID: "d3", Name: "Legal"},
	}
	active := []employee.Employee{
		{ID: "e1", Status: employee.StatusActive, DepartmentID: ptr("d1")},
		{ID: "e2", Status: employee.StatusActive, DepartmentID: ptr("d1")},
		{ID: "e3", Status: employee.StatusActive, DepartmentID: ptr("d2")},
		{ID: "e4", Status: employee.StatusTerminated, DepartmentID: ptr("d2")},
		{ID: "e5", Status: employee.StatusActive},
	}

	got := headcountByDepartment(departments, active)

	assert.Equal(t, []report.DepartmentHeadcount{
		{Name: "Engineering", Total: 2},
		{Name: "Finance", Total: 1},
		{Name: "Legal", Total: 0},
	}, got)
}

func TestTopPerformers(t *testing.T) {
	var employees []employee.Employee
	for i := 0; i < 12; i++ {
		employees = append(employees, employee.Employee{
			ID:               string(rune('a' + i)),
			FirstName:        "E",
			LastName:         string(rune('A' + i)),
			PerformanceScore: ptr(float64(i)),
		})
	}
	employees = append(employees, employee.Employee{ID: "unscored"})

	got := topPerformers(employees)

	require.Len(t, got, performanceLimit)
	assert.Equal(t, 11.0, got[0].PerformanceScore)
	assert.Equal(t, 2.0, got[len(got)-1].PerformanceScore)
	assert.Equal(t, unknownGroup, got[0].Department)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].PerformanceScore, got[i].PerformanceScore)
	}
}

func TestTrainingCompletion(t *testing.T) {
	trainings := []training.Training{
		{ID: "t1", Title: "Security", Required: true},
		{ID: "t2", Title: "Optional", Required: false},
		{ID: "t3", Title: "Ethics", Required: true},
	}
	assignments := []training.Assignment{
		{TrainingID: "t1", Status: training.StatusCompleted},
		{TrainingID: "t1", Status: training.StatusInProgress},
		{TrainingID: "t2", Status: training.StatusCompleted},
	}

	t.Run("rates against active employees", func(t *testing.T) {
		got := trainingCompletion(trainings, assignments, 3)

		require.Len(t, got, 2)
		assert.Equal(t, report.TrainingCompletion{ID: "t1", Title: "Security", CompletionRate: 33, CompletedCount: 1, TotalEmployees: 3}, got[0])
		assert.Equal(t, 0, got[1].CompletionRate)
		assert.Equal(t, 0, got[1].CompletedCount)
	})

	t.Run("no active employees", func(t *testing.T) {
		got := trainingCompletion(trainings, assignments, 0)

		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].CompletionRate)
	})
}

func TestAttendanceStats(t *testing.T) {
	r := report.DateRange{Start: day("2025-05-01"), End: day("2025-05-31")}
	records := []attendance.Record{
		{Date: day("2025-05-01"), Status: attendance.StatusPresent, DepartmentName: "Engineering"},
		{Date: day("2025-05-31"), Status: attendance.StatusLate, DepartmentName: "Engineering"},
		{Date: day("2025-05-15"), Status: attendance.StatusPresent},
		{Date: day("2025-06-01"), Status: attendance.StatusAbsent, DepartmentName: "Engineering"},
	}

	got := attendanceStats(records, r)

	assert.Equal(t, "2025-05-01", got.StartDate)
	assert.Equal(t, "2025-05-31", got.EndDate)
	assert.Equal(t, 3, got.TotalRecords)
	assert.Equal(t, map[string]int{"PRESENT": 2, "LATE": 1}, got.StatusCounts)
	assert.Equal(t, map[string]map[string]int{
		"Engineering": {"PRESENT": 1, "LATE": 1},
		"Unknown":     {"PRESENT": 1},
	}, got.DepartmentCounts)
	_, hasAbsent := got.StatusCounts["ABSENT"]
	assert.False(t, hasAbsent)
}

func TestLeaveStats(t *testing.T) {
	requests := []leave.Request{
		{Type: leave.TypeVacation, Status: leave.StatusApproved, StartDate: day("2025-05-01"), EndDate: day("2025-05-03"), Duration: 3},
		{Type: leave.TypeSick, Status: leave.StatusApproved, StartDate: day("2025-05-20"), EndDate: day("2025-05-20"), Duration: 1},
		{Type: leave.TypeVacation, Status: leave.StatusApproved, StartDate: day("2025-12-30"), EndDate: day("2026-01-02"), Duration: 4},
		{Type: leave.TypeVacation, Status: leave.StatusPending, StartDate: day("2025-07-01"), EndDate: day("2025-07-02"), Duration: 2},
		{Type: leave.TypeVacation, Status: leave.StatusApproved, StartDate: day("2024-12-30"), EndDate: day("2025-01-02"), Duration: 4},
	}

	got := leaveStats(requests, 2025)

	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, 3, got.TotalRequests)
	assert.Equal(t, 8, got.TotalDays)
	assert.Equal(t, map[string]int{"VACATION": 7, "SICK": 1}, got.TypeCounts)

	require.Len(t, got.MonthlyData, 12)
	sum := 0
	for i, m := range got.MonthlyData {
		assert.Equal(t, i+1, m.Month)
		sum += m.Days
	}
	assert.Equal(t, got.TotalDays, sum)
	assert.Equal(t, report.MonthlyLeave{Month: 5, Requests: 2, Days: 4}, got.MonthlyData[4])
	assert.Equal(t, report.MonthlyLeave{Month: 12, Requests: 1, Days: 4}, got.MonthlyData[11])
	assert.Equal(t, 0, got.MonthlyData[0].Days)
}

func TestTurnoverReport(t *testing.T) {
	terminated := []employee.Employee{
		{ID: "e1", FirstName: "Jane", LastName: "Doe", HireDate: day("2020-01-15"), TerminationDate: ptr(day("2025-03-01"))},
		{ID: "e2", FirstName: "John", LastName: "Roe", HireDate: day("2021-06-01")},
	}

	t.Run("rate", func(t *testing.T) {
		got := turnoverReport(terminated, 3)

		assert.Equal(t, 2, got.TerminatedCount)
		assert.Equal(t, 3, got.TotalEmployees)
		assert.Equal(t, 66.67, got.TurnoverRate)
		require.Len(t, got.TerminatedEmployees, 2)
		assert.Equal(t, "Jane Doe", got.TerminatedEmployees[0].Name)
		assert.Equal(t, "2020-01-15", got.TerminatedEmployees[0].HireDate)
		require.NotNil(t, got.TerminatedEmployees[0].TerminationDate)
		assert.Equal(t, "2025-03-01", *got.TerminatedEmployees[0].TerminationDate)
		assert.Nil(t, got.TerminatedEmployees[1].TerminationDate)
	})

	t.Run("empty workforce", func(t *testing.T) {
		got := turnoverReport(nil, 0)

		assert.Equal(t, 0.0, got.TurnoverRate)
		assert.NotNil(t, got.TerminatedEmployees)
	})

	t.Run("capped at 100", func(t *testing.T) {
		got := turnoverReport(terminated, 1)

		assert.Equal(t, 100.0, got.TurnoverRate)
	})
}

func TestSkillsReport(t *testing.T) {
	skills := []report.Skill{
		{ID: "s1", Name: "Go", Category: "Engineering"},
		{ID: "s2", Name: "Excel", Category: "Office"},
	}
	links := []report.EmployeeSkill{
		{SkillID: "s1", EmployeeID: "e1", EmployeeName: "Jane Doe", DepartmentName: "R&D", Proficiency: 4},
		{SkillID: "s1", EmployeeID: "e2", EmployeeName: "John Roe", Proficiency: 5},
	}

	got := skillsReport(skills, links)

	assert.Equal(t, 2, got.TotalSkills)
	require.Len(t, got.Skills, 2)
	assert.Equal(t, 2, got.Skills[0].EmployeeCount)
	assert.Equal(t, 5, got.Skills[0].AverageProficiency)
	assert.Equal(t, unknownGroup, got.Skills[0].Employees[1].Department)
	assert.Equal(t, 0, got.Skills[1].EmployeeCount)
	assert.Equal(t, 0, got.Skills[1].AverageProficiency)
	assert.Empty(t, got.Skills[1].Employees)
}

func TestCompensationReport(t *testing.T) {
	t.Run("groups by department and position", func(t *testing.T) {
		employees := []employee.Employee{
			{ID: "e1", DepartmentName: "Engineering", Position: "Engineer", Salary: ptr(decimal.RequireFromString("1000.00"))},
			{ID: "e2", DepartmentName: "Engineering", Position: "Engineer", Salary: ptr(decimal.RequireFromString("2000.00"))},
			{ID: "e3", DepartmentName: "Finance", Position: "Analyst", Salary: ptr(decimal.RequireFromString("1500.50"))},
			{ID: "e4", DepartmentName: "Finance", Position: "Analyst"},
		}

		got := compensationReport(employees)

		assert.Equal(t, 3, got.TotalEmployees)
		assert.Len(t, got.Employees, 3)
		assert.True(t, got.AverageSalary.Equal(decimal.RequireFromString("1500.17")), got.AverageSalary.String())

		eng := got.DepartmentStats["Engineering"]
		assert.Equal(t, 2, eng.Count)
		assert.True(t, eng.Total.Equal(decimal.NewFromInt(3000)))
		assert.True(t, eng.Avg.Equal(decimal.NewFromInt(1500)))

		analyst := got.PositionStats["Analyst"]
		assert.Equal(t, 1, analyst.Count)
		assert.True(t, analyst.Avg.Equal(decimal.RequireFromString("1500.50")))
	})

	t.Run("no salaried employees", func(t *testing.T) {
		got := compensationReport([]employee.Employee{{ID: "e1"}})

		assert.Equal(t, 0, got.TotalEmployees)
		assert.True(t, got.AverageSalary.IsZero())
		assert.Empty(t, got.DepartmentStats)
		assert.Empty(t, got.PositionStats)
	})
}

func TestTrainingReport(t *testing.T) {
	trainings := []training.Training{
		{ID: "t1", Title: "Security", Type: training.TypeCourse},
		{ID: "t2", Title: "Empty", Type: training.TypeWebinar},
	}
	assignments := []training.Assignment{
		{TrainingID: "t1", Status: training.StatusCompleted, EmployeeID: ptr("e1"), EmployeeName: "Jane Doe", PerformanceScore: ptr(4.5)},
		{TrainingID: "t1", Status: training.StatusCompleted, EmployeeID: ptr("e2"), EmployeeName: "John Roe"},
		{TrainingID: "t1", Status: training.StatusInProgress, EmployeeID: ptr("e3"), PerformanceScore: ptr(3.0)},
	}

	got := trainingReport(trainings, assignments)

	require.Len(t, got.Trainings, 2)
	first := got.Trainings[0]
	assert.Equal(t, "COURSE", first.Type)
	assert.Equal(t, 3, first.TotalAssigned)
	assert.Equal(t, 2, first.Completed)
	assert.Equal(t, 67, first.CompletionRate)
	require.Len(t, first.EmployeesWithScores, 1)
	assert.Equal(t, "e1", first.EmployeesWithScores[0].EmployeeID)

	assert.Equal(t, 0, got.Trainings[1].CompletionRate)
	assert.NotNil(t, got.Trainings[1].EmployeesWithScores)
}
