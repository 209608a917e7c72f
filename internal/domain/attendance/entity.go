package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusOnLeave Status = "ON_LEAVE"
	StatusHalfDay Status = "HALF_DAY"
)

var Statuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusOnLeave),
	string(StatusHalfDay),
}

// Record is one attendance entry joined with its employee.
type Record struct {
	ID             string
	EmployeeID     string
	EmployeeCode   string
	EmployeeName   string
	DepartmentName string

	Date     time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   Status
	Notes    *string
}
