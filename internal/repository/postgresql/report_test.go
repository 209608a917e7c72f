package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeColumns = []string{
	"id", "user_id", "employee_code", "first_name", "last_name", "email",
	"department_id", "department", "position", "status",
	"hire_date", "termination_date", "salary", "performance_score", "updated_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWhereBuilder(t *testing.T) {
	w := newWhere()
	assert.Equal(t, "", w.clause())

	w.add("a = ?", 1)
	w.raw("b IS NOT NULL")
	w.add("(c ILIKE ? OR d ILIKE ?)", "%x%")

	assert.Equal(t, " WHERE a = $1 AND b IS NOT NULL AND (c ILIKE $2 OR d ILIKE $2)", w.clause())
	assert.Equal(t, []interface{}{1, "%x%"}, w.args)
	assert.Equal(t, "$3", w.arg(10))
}

func TestReportRepository_ListEmployees_Filters(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	dept := "0198f1c2-0000-7000-8000-00000000d001"
	search := "jan"
	hired := date("2021-03-04")
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE e.department_id = $1 AND e.status = ANY($2) AND " +
			"(e.first_name ILIKE $3 OR e.last_name ILIKE $3 OR e.email ILIKE $3 OR e.employee_code ILIKE $3)",
	)).
		WithArgs(dept, []string{"ACTIVE"}, "%jan%").
		WillReturnRows(pgxmock.NewRows(employeeColumns).
			AddRow("e1", nil, "EMP001", "Jane", "Doe", "jane@example.com", nil, "R&D", "Engineer", "ACTIVE", hired, nil, "1200.50", nil, now))

	got, err := repo.ListEmployees(context.Background(), report.EmployeeQuery{
		DepartmentID: &dept,
		Statuses:     []employee.Status{employee.StatusActive},
		Search:       &search,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "EMP001", got[0].EmployeeCode)
	assert.Equal(t, employee.StatusActive, got[0].Status)
	assert.Equal(t, "R&D", got[0].DepartmentName)
	require.NotNil(t, got[0].Salary)
	assert.Equal(t, "1200.5", got[0].Salary.String())
	assert.Nil(t, got[0].PerformanceScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ListEmployees_UpdatedWindowAndLimit(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	r := report.DateRange{Start: date("2025-01-01"), End: date("2025-03-31")}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.performance_score IS NOT NULL AND e.updated_at >= $1 AND e.updated_at < $2")).
		WithArgs(r.Start, date("2025-04-01"), 10).
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	got, err := repo.ListEmployees(context.Background(), report.EmployeeQuery{
		WithPerformanceScore: true,
		UpdatedIn:            &r,
		OrderBy:              report.OrderByPerformanceDesc,
		Limit:                10,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ListEmployees_SalaryOrder(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY e.salary DESC, e.last_name ASC")).
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	got, err := repo.ListEmployees(context.Background(), report.EmployeeQuery{
		WithSalary: true,
		OrderBy:    report.OrderBySalaryDesc,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_CountEmployees(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees e WHERE e.status = ANY($1)")).
		WithArgs([]string{"ACTIVE"}).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	got, err := repo.CountEmployees(context.Background(), report.EmployeeQuery{
		Statuses: []employee.Status{employee.StatusActive},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_CountEmployees_NoFilter(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees e")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	got, err := repo.CountEmployees(context.Background(), report.EmployeeQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestReportRepository_ListAttendance_InclusiveRange(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	r := report.DateRange{Start: date("2025-05-01"), End: date("2025-05-31")}

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_records a")).
		WithArgs(r.Start, date("2025-06-01")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "employee_code", "name", "department", "date", "check_in", "check_out", "status", "notes"}).
			AddRow("a1", "e1", "EMP001", "Jane Doe", "Engineering", date("2025-05-31"), nil, nil, "LATE", nil))

	got, err := repo.ListAttendance(context.Background(), report.AttendanceQuery{Range: &r})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "LATE", string(got[0].Status))
	assert.Nil(t, got[0].CheckIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ListLeaveRequests(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	year := report.DateRange{Start: date("2025-01-01"), End: date("2025-12-31")}
	approved := leave.StatusApproved
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE lr.start_date >= $1 AND lr.start_date < $2 AND lr.status = $3")).
		WithArgs(year.Start, date("2026-01-01"), "APPROVED").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "employee_id", "employee_code", "name", "department", "type", "start_date", "end_date",
			"duration", "status", "reason", "approved_by", "approver", "approved_at", "created_at", "updated_at",
		}).AddRow("l1", "e1", "EMP001", "Jane Doe", "R&D", "VACATION", date("2025-05-01"), date("2025-05-03"),
			3, "APPROVED", nil, nil, nil, nil, now, now))

	got, err := repo.ListLeaveRequests(context.Background(), report.LeaveQuery{StartIn: &year, Status: &approved})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, leave.TypeVacation, got[0].Type)
	assert.Equal(t, 3, got[0].Duration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ListAssignments_RequiredOnly(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM training_statuses ts")).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "training_id", "title", "type", "user_id", "employee_id", "employee_code", "name", "email",
			"department_id", "department", "performance_score", "status", "progress", "started_at", "completed_at",
			"score", "updated_at",
		}).AddRow("ts1", "t1", "Security", "COURSE", "u1", nil, nil, "Guest User", "guest@example.com",
			nil, "", nil, "IN_PROGRESS", 40, nil, nil, nil, now))

	got, err := repo.ListAssignments(context.Background(), report.AssignmentQuery{RequiredOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, training.StatusInProgress, got[0].Status)
	assert.Equal(t, 40, got[0].Progress)
	assert.Nil(t, got[0].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ListSkills(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	category := "Engineering"
	dept := "d1"

	mock.ExpectQuery(regexp.QuoteMeta("FROM skills s WHERE s.category = $1")).
		WithArgs(category).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "category"}).AddRow("s1", "Go", "Engineering"))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.category = $1 AND e.department_id = $2")).
		WithArgs(category, dept).
		WillReturnRows(pgxmock.NewRows([]string{"skill_id", "employee_id", "name", "department", "proficiency"}).
			AddRow("s1", "e1", "Jane Doe", "Engineering", 4))

	q := report.SkillQuery{Category: &category, DepartmentID: &dept}
	skills, err := repo.ListSkills(context.Background(), q)
	require.NoError(t, err)
	links, err := repo.ListEmployeeSkills(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, []report.Skill{{ID: "s1", Name: "Go", Category: "Engineering"}}, skills)
	require.Len(t, links, 1)
	assert.Equal(t, 4, links[0].Proficiency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_QueryError(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM departments")).WillReturnError(errors.New("connection reset"))

	_, err := repo.ListDepartments(context.Background())
	assert.ErrorContains(t, err, "failed to query departments")
}
