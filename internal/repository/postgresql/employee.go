package postgresql

import (
	"fmt"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

const employeeSelect = `
		SELECT e.id, e.user_id, e.employee_code, e.first_name, e.last_name, e.email,
			e.department_id, COALESCE(d.name, ''), e.position, e.status,
			e.hire_date, e.termination_date, e.salary, e.performance_score, e.updated_at
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id`

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var e employee.Employee
	var status string
	var salary decimal.NullDecimal

	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.EmployeeCode,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.DepartmentID,
		&e.DepartmentName,
		&e.Position,
		&status,
		&e.HireDate,
		&e.TerminationDate,
		&salary,
		&e.PerformanceScore,
		&e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	e.Status = employee.Status(status)
	if salary.Valid {
		e.Salary = &salary.Decimal
	}
	return e, nil
}

// employeeWhere translates an EmployeeQuery into predicates over alias e.
func employeeWhere(q report.EmployeeQuery) *where {
	w := newWhere()
	if q.DepartmentID != nil {
		w.add("e.department_id = ?", *q.DepartmentID)
	}
	if len(q.Statuses) > 0 {
		statuses := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			statuses[i] = string(s)
		}
		w.add("e.status = ANY(?)", statuses)
	}
	if q.Position != nil {
		w.add("e.position = ?", *q.Position)
	}
	if q.Search != nil {
		w.add("(e.first_name ILIKE ? OR e.last_name ILIKE ? OR e.email ILIKE ? OR e.employee_code ILIKE ?)", containsPattern(*q.Search))
	}
	if q.WithSalary {
		w.raw("e.salary IS NOT NULL")
	}
	if q.WithPerformanceScore {
		w.raw("e.performance_score IS NOT NULL")
	}
	if q.UpdatedIn != nil {
		w.add("e.updated_at >= ?", q.UpdatedIn.Start)
		w.add("e.updated_at < ?", q.UpdatedIn.EndExclusive())
	}
	return w
}

func employeeOrder(o report.EmployeeOrder) string {
	switch o {
	case report.OrderByPerformanceDesc:
		return "e.performance_score DESC, e.last_name ASC"
	case report.OrderByUpdatedDesc:
		return "e.updated_at DESC"
	case report.OrderBySalaryDesc:
		return "e.salary DESC, e.last_name ASC"
	default:
		return "e.last_name ASC, e.first_name ASC"
	}
}

func employeeListQuery(q report.EmployeeQuery) (string, []interface{}) {
	w := employeeWhere(q)
	query := fmt.Sprintf("%s%s\n\t\tORDER BY %s", employeeSelect, w.clause(), employeeOrder(q.OrderBy))
	if q.Limit > 0 {
		query += " LIMIT " + w.arg(q.Limit)
	}
	return query, w.args
}
