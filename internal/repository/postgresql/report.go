package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db database.Querier
}

func NewReportRepository(db database.Querier) report.Repository {
	return &reportRepositoryImpl{db: db}
}

func (r *reportRepositoryImpl) ListDepartments(ctx context.Context) ([]report.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM departments ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []report.Department
	for rows.Next() {
		var d report.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return departments, nil
}

func (r *reportRepositoryImpl) ListEmployees(ctx context.Context, eq report.EmployeeQuery) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query, args := employeeListQuery(eq)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return employees, nil
}

func (r *reportRepositoryImpl) CountEmployees(ctx context.Context, eq report.EmployeeQuery) (int, error) {
	q := GetQuerier(ctx, r.db)

	w := employeeWhere(eq)
	var total int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees e"+w.clause(), w.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

func (r *reportRepositoryImpl) ListAttendance(ctx context.Context, aq report.AttendanceQuery) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	w := attendanceWhere(aq)
	query := attendanceSelect + w.clause() + "\n\t\tORDER BY a.date DESC, e.last_name ASC"

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return records, nil
}

func (r *reportRepositoryImpl) ListLeaveRequests(ctx context.Context, lq report.LeaveQuery) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	w := leaveWhere(lq)
	query := leaveRequestSelect + w.clause() + "\n\t\tORDER BY lr.start_date DESC"

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return requests, nil
}

func (r *reportRepositoryImpl) ListTrainings(ctx context.Context, tq report.TrainingQuery) ([]training.Training, error) {
	q := GetQuerier(ctx, r.db)

	w := trainingWhere(tq)
	query := trainingSelect + w.clause() + "\n\t\tORDER BY t.title ASC"

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trainings: %w", err)
	}
	defer rows.Close()

	return collectTrainings(rows)
}

func (r *reportRepositoryImpl) ListAssignments(ctx context.Context, aq report.AssignmentQuery) ([]training.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	w := assignmentWhere(aq)
	query := assignmentSelect + w.clause() + "\n\t\tORDER BY ts.updated_at DESC"

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query training assignments: %w", err)
	}
	defer rows.Close()

	var assignments []training.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return assignments, nil
}

// ListSkills applies only the category filter; departments constrain the links.
func (r *reportRepositoryImpl) ListSkills(ctx context.Context, sq report.SkillQuery) ([]report.Skill, error) {
	q := GetQuerier(ctx, r.db)

	w := newWhere()
	if sq.Category != nil {
		w.add("s.category = ?", *sq.Category)
	}
	query := "SELECT s.id, s.name, COALESCE(s.category, '') FROM skills s" + w.clause() + " ORDER BY s.name ASC"

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var skills []report.Skill
	for rows.Next() {
		var s report.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return skills, nil
}

func (r *reportRepositoryImpl) ListEmployeeSkills(ctx context.Context, sq report.SkillQuery) ([]report.EmployeeSkill, error) {
	q := GetQuerier(ctx, r.db)

	w := newWhere()
	if sq.Category != nil {
		w.add("s.category = ?", *sq.Category)
	}
	if sq.DepartmentID != nil {
		w.add("e.department_id = ?", *sq.DepartmentID)
	}
	query := `
		SELECT es.skill_id, es.employee_id, e.first_name || ' ' || e.last_name,
			COALESCE(d.name, ''), es.proficiency
		FROM employee_skills es
		JOIN skills s ON s.id = es.skill_id
		JOIN employees e ON e.id = es.employee_id
		LEFT JOIN departments d ON d.id = e.department_id` + w.clause() + `
		ORDER BY e.last_name ASC, e.first_name ASC`

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee skills: %w", err)
	}
	defer rows.Close()

	var links []report.EmployeeSkill
	for rows.Next() {
		var l report.EmployeeSkill
		if err := rows.Scan(&l.SkillID, &l.EmployeeID, &l.EmployeeName, &l.DepartmentName, &l.Proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan employee skill: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return links, nil
}
