package leave

import "time"

type Type string

const (
	TypeVacation    Type = "VACATION"
	TypeSick        Type = "SICK"
	TypePersonal    Type = "PERSONAL"
	TypeMaternity   Type = "MATERNITY"
	TypePaternity   Type = "PATERNITY"
	TypeBereavement Type = "BEREAVEMENT"
	TypeUnpaid      Type = "UNPAID"
)

var Types = []string{
	string(TypeVacation),
	string(TypeSick),
	string(TypePersonal),
	string(TypeMaternity),
	string(TypePaternity),
	string(TypeBereavement),
	string(TypeUnpaid),
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

var Statuses = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusCancelled),
}

// Request is a leave request joined with its employee and approver.
type Request struct {
	ID             string
	EmployeeID     string
	EmployeeCode   string
	EmployeeName   string
	DepartmentName string

	Type      Type
	StartDate time.Time
	EndDate   time.Time
	Duration  int
	Status    Status
	Reason    *string

	ApprovedBy   *string // user id
	ApproverName *string
	ApprovedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration counts calendar days from start to end, both inclusive.
func Duration(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
