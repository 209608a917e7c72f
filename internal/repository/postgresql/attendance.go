package postgresql

import (
	"github.com/cmlabs-hris/hris-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
)

const attendanceSelect = `
		SELECT a.id, a.employee_id, e.employee_code, e.first_name || ' ' || e.last_name,
			COALESCE(d.name, ''), a.date, a.check_in, a.check_out, a.status, a.notes
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id`

func scanAttendance(row rowScanner) (attendance.Record, error) {
	var r attendance.Record
	var status string

	err := row.Scan(
		&r.ID,
		&r.EmployeeID,
		&r.EmployeeCode,
		&r.EmployeeName,
		&r.DepartmentName,
		&r.Date,
		&r.CheckIn,
		&r.CheckOut,
		&status,
		&r.Notes,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	r.Status = attendance.Status(status)
	return r, nil
}

func attendanceWhere(q report.AttendanceQuery) *where {
	w := newWhere()
	if q.Range != nil {
		w.add("a.date >= ?", q.Range.Start)
		w.add("a.date < ?", q.Range.EndExclusive())
	}
	if q.EmployeeID != nil {
		w.add("a.employee_id = ?", *q.EmployeeID)
	}
	if q.Status != nil {
		w.add("a.status = ?", string(*q.Status))
	}
	return w
}
