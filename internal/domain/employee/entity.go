package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusOnLeave    Status = "ON_LEAVE"
	StatusTerminated Status = "TERMINATED"
	StatusSuspended  Status = "SUSPENDED"
)

var Statuses = []string{
	string(StatusActive),
	string(StatusOnLeave),
	string(StatusTerminated),
	string(StatusSuspended),
}

// Employee is the read model shared by reports and exports.
type Employee struct {
	ID           string
	UserID       *string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string

	DepartmentID   *string
	DepartmentName string
	Position       string
	Status         Status

	HireDate         time.Time
	TerminationDate  *time.Time
	Salary           *decimal.Decimal
	PerformanceScore *float64

	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
